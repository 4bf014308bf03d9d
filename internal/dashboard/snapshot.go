package dashboard

import (
	"strconv"

	"cotizador/internal/models"
)

// snapshot.go - фильтрация снапшотов и join User↔Budget
//
// Бюджеты связаны с пользователями не прямым foreign key, а через
// котировку: budget.ID совпадает со строковым представлением quotation.ID.
// Это нестрогий строковый join с задокументированной цепочкой fallback'ов:
//
//  1. совпадение с котировкой в окне  -> владелец котировки
//  2. денормализованный budget.UserID -> владелец из самого бюджета
//  3. ничего не нашлось               -> сентинел "N/A" (AssigneeID = 0)
//
// Резолвер возвращает тегированный результат, чтобы неоднозначность join'а
// была видна тестам, а не пряталась за тихим дефолтом.

// Snapshot - полные нефильтрованные выборки трёх провайдеров данных
type Snapshot struct {
	Users      []*models.User
	Budgets    []*models.Budget
	Quotations []*models.Quotation
}

// ResolutionSource - способ, которым бюджет был атрибутирован пользователю
type ResolutionSource int

const (
	// ResolvedViaQuotation - основной путь: join через котировку
	ResolvedViaQuotation ResolutionSource = iota

	// ResolvedViaEmbeddedUser - fallback: денормализованная ссылка в бюджете
	ResolvedViaEmbeddedUser

	// Unresolved - атрибуция не удалась, бюджет приписан команде
	Unresolved
)

// Assignee - результат атрибуции бюджета
type Assignee struct {
	ID     int
	Name   string
	Source ResolutionSource
}

// Dataset - отфильтрованный по окну набор данных для одного вычисления
//
// Все индексы строятся один раз при создании: evaluators читают Dataset
// конкурентно, и ленивые кэши привели бы к гонкам.
type Dataset struct {
	Window     Window
	Users      []*models.User      // НЕ фильтруются по датам
	Budgets    []*models.Budget    // дата создания внутри окна
	Quotations []*models.Quotation // дата создания внутри окна

	usersByID     map[int]*models.User
	ownerByBudget map[string]int            // quotation.ID (строкой) -> UserID
	budgetsByUser map[int][]*models.Budget  // 0 = неатрибутированные
	quotators     []*models.User
}

// BuildDataset фильтрует снапшот по окну и строит индексы join'а
func BuildDataset(snap Snapshot, w Window) *Dataset {
	d := &Dataset{
		Window:        w,
		Users:         snap.Users,
		usersByID:     make(map[int]*models.User, len(snap.Users)),
		ownerByBudget: make(map[string]int),
		budgetsByUser: make(map[int][]*models.Budget),
	}

	for _, u := range snap.Users {
		d.usersByID[u.ID] = u
		if u.IsQuotator() {
			d.quotators = append(d.quotators, u)
		}
	}

	for _, q := range snap.Quotations {
		if !w.Contains(q.CreatedAt) {
			continue
		}
		d.Quotations = append(d.Quotations, q)
		d.ownerByBudget[strconv.Itoa(q.ID)] = q.UserID
	}

	for _, b := range snap.Budgets {
		if !w.Contains(b.CreatedAt) {
			continue
		}
		d.Budgets = append(d.Budgets, b)
	}

	// Атрибуция строится после заполнения ownerByBudget
	for _, b := range d.Budgets {
		a := d.ResolveAssignee(b)
		d.budgetsByUser[a.ID] = append(d.budgetsByUser[a.ID], b)
	}

	return d
}

// ResolveAssignee атрибутирует бюджет пользователю по цепочке fallback'ов.
// Имя берётся из снапшота пользователей; если пользователь с найденным ID
// в снапшоте отсутствует, имя остаётся "N/A", но ID и источник сохраняются.
func (d *Dataset) ResolveAssignee(b *models.Budget) Assignee {
	if userID, ok := d.ownerByBudget[b.ID]; ok {
		return Assignee{
			ID:     userID,
			Name:   d.userName(userID),
			Source: ResolvedViaQuotation,
		}
	}

	if b.UserID != 0 {
		return Assignee{
			ID:     b.UserID,
			Name:   d.userName(b.UserID),
			Source: ResolvedViaEmbeddedUser,
		}
	}

	return Assignee{
		ID:     0,
		Name:   models.AssigneeUnknown,
		Source: Unresolved,
	}
}

// Quotators возвращает пользователей с ролью quotator
func (d *Dataset) Quotators() []*models.User {
	return d.quotators
}

// BudgetsOf возвращает бюджеты, атрибутированные пользователю
func (d *Dataset) BudgetsOf(userID int) []*models.Budget {
	return d.budgetsByUser[userID]
}

func (d *Dataset) userName(userID int) string {
	if u, ok := d.usersByID[userID]; ok {
		return u.Name
	}
	return models.AssigneeUnknown
}

// countActive возвращает количество активных бюджетов в наборе
func countActive(budgets []*models.Budget) int {
	count := 0
	for _, b := range budgets {
		if b.IsActive() {
			count++
		}
	}
	return count
}

// countCompleted возвращает количество завершённых бюджетов в наборе
func countCompleted(budgets []*models.Budget) int {
	count := 0
	for _, b := range budgets {
		if b.IsCompleted() {
			count++
		}
	}
	return count
}
