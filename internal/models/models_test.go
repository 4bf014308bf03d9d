package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// ============ Budget Tests ============

func TestBudget_StatusSets(t *testing.T) {
	tests := []struct {
		status        string
		wantActive    bool
		wantCompleted bool
	}{
		{BudgetStatusPending, true, false},
		{BudgetStatusInProgress, true, false},
		{BudgetStatusSent, true, false},
		{BudgetStatusApproved, false, true},
		{BudgetStatusRejected, false, true},
		{BudgetStatusClosed, false, true},
		{"borrador", false, false}, // неизвестный статус ни активен, ни завершён
		{"", false, false},
	}

	for _, tt := range tests {
		b := Budget{ID: "1", Status: tt.status}
		if b.IsActive() != tt.wantActive {
			t.Errorf("IsActive(%q) = %v, ожидали %v", tt.status, b.IsActive(), tt.wantActive)
		}
		if b.IsCompleted() != tt.wantCompleted {
			t.Errorf("IsCompleted(%q) = %v, ожидали %v", tt.status, b.IsCompleted(), tt.wantCompleted)
		}
	}
}

func TestBudget_ActiveAndCompletedDisjoint(t *testing.T) {
	for status := range ActiveStatuses {
		if CompletedStatuses[status] {
			t.Errorf("статус %q одновременно активен и завершён", status)
		}
	}
}

func TestBudget_JSONSerialization(t *testing.T) {
	b := Budget{
		ID:           "105",
		Status:       BudgetStatusSent,
		CreatedAt:    time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Total:        185000.00,
		CustomerID:   7,
		CustomerName: "Constructora Sur",
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("ошибка сериализации: %v", err)
	}

	jsonStr := string(data)

	// UserID = 0 не должен попадать в JSON (omitempty)
	if strings.Contains(jsonStr, "user_id") {
		t.Errorf("user_id = 0 не должен быть в JSON: %s", jsonStr)
	}

	for _, field := range []string{`"id":"105"`, `"status":"enviada"`, `"customer_name":"Constructora Sur"`} {
		if !strings.Contains(jsonStr, field) {
			t.Errorf("поле %s должно быть в JSON: %s", field, jsonStr)
		}
	}
}

// ============ User Tests ============

func TestUser_IsQuotator(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleQuotator, true},
		{RoleAdmin, false},
		{RoleViewer, false},
		{"", false},
	}

	for _, tt := range tests {
		u := User{ID: 1, Role: tt.role}
		if u.IsQuotator() != tt.want {
			t.Errorf("IsQuotator(%q) = %v, ожидали %v", tt.role, u.IsQuotator(), tt.want)
		}
	}
}

// ============ Alert Tests ============

func TestAlert_JSONOptionalFields(t *testing.T) {
	// Минимальный алерт: без опциональных полей
	minimal := Alert{
		Level:        AlertLevelYellow,
		Title:        "Carga de trabajo alta",
		Description:  "Juan Pérez tiene 3 cotizaciones activas",
		Time:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Category:     AlertCategoryWorkload,
		AssigneeName: "Juan Pérez",
		AssigneeID:   2,
	}

	data, err := json.Marshal(minimal)
	if err != nil {
		t.Fatalf("ошибка сериализации: %v", err)
	}
	jsonStr := string(data)

	for _, omitted := range []string{"subject_quotation_id", "days_without_edit", "metric_value"} {
		if strings.Contains(jsonStr, omitted) {
			t.Errorf("пустое поле %q не должно быть в JSON: %s", omitted, jsonStr)
		}
	}

	// Полный алерт: все опциональные поля заполнены
	days := 20
	metric := 185000.00
	full := minimal
	full.SubjectQuotationID = "105"
	full.DaysWithoutEdit = &days
	full.MetricValue = &metric

	data, err = json.Marshal(full)
	if err != nil {
		t.Fatalf("ошибка сериализации: %v", err)
	}
	jsonStr = string(data)

	for _, present := range []string{`"subject_quotation_id":"105"`, `"days_without_edit":20`, `"metric_value":185000`} {
		if !strings.Contains(jsonStr, present) {
			t.Errorf("поле %s должно быть в JSON: %s", present, jsonStr)
		}
	}
}

func TestAlert_JSONDeserialization(t *testing.T) {
	jsonData := `{
		"level": "red",
		"title": "Inactividad crítica",
		"description": "Presupuesto 105 sin editar hace 20 días",
		"time": "2026-08-30T12:00:00Z",
		"category": "inactivity",
		"subject_quotation_id": "105",
		"assignee_name": "Juan Pérez",
		"assignee_id": 2,
		"days_without_edit": 20
	}`

	var alert Alert
	if err := json.Unmarshal([]byte(jsonData), &alert); err != nil {
		t.Fatalf("ошибка десериализации: %v", err)
	}

	if alert.Level != AlertLevelRed {
		t.Errorf("Level: ожидали 'red', получили %q", alert.Level)
	}
	if alert.Category != AlertCategoryInactivity {
		t.Errorf("Category: ожидали 'inactivity', получили %q", alert.Category)
	}
	if alert.DaysWithoutEdit == nil || *alert.DaysWithoutEdit != 20 {
		t.Errorf("DaysWithoutEdit: ожидали 20, получили %v", alert.DaysWithoutEdit)
	}
	if alert.MetricValue != nil {
		t.Errorf("MetricValue должен быть nil, получили %v", *alert.MetricValue)
	}
}
