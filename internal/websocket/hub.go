package websocket

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"cotizador/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ============ Типизированные сообщения дашборда ============
// Известные типы сериализуются без рефлексии по map'ам

// AlertsUpdateMessage - сообщение с пересчитанными алертами
type AlertsUpdateMessage struct {
	Type   string         `json:"type"`
	Alerts []models.Alert `json:"alerts"`
}

// KPIUpdateMessage - сообщение с обновлёнными KPI
type KPIUpdateMessage struct {
	Type string            `json:"type"`
	Data models.KPISummary `json:"data"`
}

// Hub управляет всеми активными WebSocket соединениями дашборда
//
// Подписчики получают push-обновления алертов и KPI от периодического
// рефрешера вместо поллинга REST API. Hub только рассылает: входящие
// сообщения клиентов игнорируются.
//
// Типы сообщений:
// - alertsUpdate: пересчитанный список алертов
// - kpiUpdate: обновлённые сводные показатели
//
// Использование:
// 1. Создать hub: hub := NewHub(logger)
// 2. Запустить в горутине: go hub.Run()
// 3. Рассылать: hub.BroadcastAlertsUpdate(alerts)
type Hub struct {
	// Зарегистрированные клиенты
	clients map[*Client]bool

	// Broadcast канал для отправки сообщений всем клиентам
	broadcast chan []byte

	// Регистрация нового клиента
	register chan *Client

	// Отмена регистрации клиента
	unregister chan *Client

	// Mutex для потокобезопасного доступа к clients
	mu sync.RWMutex

	// Сигнал завершения главного цикла
	done chan struct{}

	logger *zap.Logger
}

// NewHub создает новый Hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run запускает главный цикл Hub
//
// Должен запускаться в отдельной горутине: go hub.Run()
//
// При рассылке список клиентов копируется под коротким RLock, отправка
// идёт без блокировки, а не успевающие клиенты удаляются под Write Lock:
// медленный подписчик не должен тормозить регистрацию остальных.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("websocket client connected", zap.Int("total", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("websocket client disconnected", zap.Int("total", total))

		case message := <-h.broadcast:
			h.mu.RLock()
			clients := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clients = append(clients, client)
			}
			h.mu.RUnlock()

			var toRemove []*Client
			for _, client := range clients {
				select {
				case client.send <- message:
				default:
					// Буфер клиента переполнен - помечаем для удаления
					toRemove = append(toRemove, client)
				}
			}

			if len(toRemove) > 0 {
				h.mu.Lock()
				for _, client := range toRemove {
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.send)
					}
				}
				total := len(h.clients)
				h.mu.Unlock()
				h.logger.Warn("removed slow websocket clients",
					zap.Int("removed", len(toRemove)),
					zap.Int("total", total),
				)
			}
		}
	}
}

// Stop останавливает главный цикл Hub
func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast сериализует сообщение и отправляет всем подключенным клиентам.
// После Stop() сообщения молча отбрасываются: цикл Run уже не читает
// канал, и отправка без select заблокировала бы вызывающую горутину.
func (h *Hub) Broadcast(message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal broadcast message", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

// BroadcastAlertsUpdate отправляет пересчитанные алерты
func (h *Hub) BroadcastAlertsUpdate(alerts []models.Alert) {
	if alerts == nil {
		alerts = []models.Alert{}
	}
	h.Broadcast(&AlertsUpdateMessage{
		Type:   "alertsUpdate",
		Alerts: alerts,
	})
}

// BroadcastKPIUpdate отправляет обновлённые KPI
func (h *Hub) BroadcastKPIUpdate(kpis models.KPISummary) {
	h.Broadcast(&KPIUpdateMessage{
		Type: "kpiUpdate",
		Data: kpis,
	})
}

// ClientCount возвращает количество подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
