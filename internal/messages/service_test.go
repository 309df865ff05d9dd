package messages

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drgilson/gascrm-backend/internal/customers"
	"github.com/drgilson/gascrm-backend/pkg/db/models"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

func newTestService(t *testing.T, historyLimit int) (Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Customer{}, &models.Message{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc, err := NewService(ServiceParams{
		Repo:         NewRepository(conn),
		Customers:    customers.NewRepository(conn),
		HistoryLimit: historyLimit,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, conn
}

func TestSendSubstitutesPlaceholderAndRecordsRows(t *testing.T) {
	svc, conn := newTestService(t, 100)

	maria := models.Customer{Name: "Maria", Phone: "1", CycleDays: 30, IsActive: true}
	joao := models.Customer{Name: "João", Phone: "2", CycleDays: 30, IsActive: false}
	conn.Create(&maria)
	conn.Create(&joao)

	resp, err := svc.Send(context.Background(), SendRequest{
		CustomerIDs: []int64{maria.ID, joao.ID},
		Text:        "Olá [NOME], seu gás está acabando!",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.Sent != 2 {
		t.Fatalf("inactive customers are still addressable; expected 2 sent, got %d", resp.Sent)
	}
	if len(resp.Errors) != 0 {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
	if resp.Message != "2 mensagens enviadas" {
		t.Fatalf("unexpected summary %q", resp.Message)
	}

	var rows []models.Message
	conn.Order("id").Find(&rows)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Text != "Olá Maria, seu gás está acabando!" {
		t.Fatalf("placeholder not substituted: %q", rows[0].Text)
	}
	if rows[1].Text != "Olá João, seu gás está acabando!" {
		t.Fatalf("placeholder not substituted: %q", rows[1].Text)
	}
	if rows[0].Status != models.MessageStatusSent {
		t.Fatalf("unexpected status %q", rows[0].Status)
	}
	if rows[0].CustomerID == nil || *rows[0].CustomerID != maria.ID {
		t.Fatalf("unexpected customer reference %v", rows[0].CustomerID)
	}
}

func TestSendAggregatesUnknownIDs(t *testing.T) {
	svc, conn := newTestService(t, 100)

	maria := models.Customer{Name: "Maria", Phone: "1", CycleDays: 30, IsActive: true}
	conn.Create(&maria)

	resp, err := svc.Send(context.Background(), SendRequest{
		CustomerIDs: []int64{maria.ID, 999},
		Text:        "Oi [NOME]",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.Sent != 1 {
		t.Fatalf("expected 1 sent, got %d", resp.Sent)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Cliente 999 não encontrado" {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}

	var count int64
	conn.Model(&models.Message{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 recorded row, got %d", count)
	}
}

func TestSendValidation(t *testing.T) {
	svc, _ := newTestService(t, 100)

	_, err := svc.Send(context.Background(), SendRequest{Text: "Oi"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty ids, got %v", err)
	}

	_, err = svc.Send(context.Background(), SendRequest{CustomerIDs: []int64{1}})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty text, got %v", err)
	}
}

func TestHistoryNewestFirstCapped(t *testing.T) {
	svc, conn := newTestService(t, 3)

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		conn.Create(&models.Message{
			Text:   fmt.Sprintf("msg %d", i),
			SentAt: base.Add(time.Duration(i) * time.Hour),
			Status: models.MessageStatusSent,
		})
	}

	history, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected capped history of 3, got %d", len(history))
	}
	if history[0].Text != "msg 4" || history[2].Text != "msg 2" {
		t.Fatalf("expected newest first, got %+v", history)
	}
}
