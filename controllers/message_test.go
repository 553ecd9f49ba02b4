package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outreachpro-backend/models"
	"outreachpro-backend/services"
	"outreachpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newSendRouter(store services.Store, userID uuid.UUID, limiter *utils.UserRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// stand-in for the auth middleware
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID.String())
	})

	mc := &MessageController{
		Sender:  services.NewSenderService(store),
		Limiter: limiter,
	}
	r.POST("/api/messages/send", mc.SendMessage)
	return r
}

func sendFixture() (*stubStore, uuid.UUID, models.Contact) {
	userID := uuid.New()
	contact := models.Contact{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Ada",
		Phone:  "+2348012345678",
		Status: models.ContactActive,
	}
	store := &stubStore{
		contacts: map[uuid.UUID][]models.Contact{userID: {contact}},
	}
	return store, userID, contact
}

func postSend(r *gin.Engine, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/messages/send", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessage_CustomMessage(t *testing.T) {
	store, userID, contact := sendFixture()
	r := newSendRouter(store, userID, nil)

	w := postSend(r, `{"contactId":"`+contact.ID.String()+`","customMessage":"Hello Ada"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", w.Code, w.Body.String())
	}

	var body struct {
		Success     bool   `json:"success"`
		WhatsappURL string `json:"whatsappUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success {
		t.Errorf("success = false")
	}
	if body.WhatsappURL != "https://wa.me/2348012345678?text=Hello%20Ada" {
		t.Errorf("whatsappUrl = %q", body.WhatsappURL)
	}

	if len(store.inserted) != 1 || store.inserted[0].Status != models.LogSent {
		t.Fatalf("expected one 'sent' log row, got %+v", store.inserted)
	}
}

func TestSendMessage_UnknownContact(t *testing.T) {
	store, userID, _ := sendFixture()
	r := newSendRouter(store, userID, nil)

	w := postSend(r, `{"contactId":"`+uuid.NewString()+`","customMessage":"hi"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("failed send must not log")
	}
}

func TestSendMessage_NoSource(t *testing.T) {
	store, userID, contact := sendFixture()
	r := newSendRouter(store, userID, nil)

	w := postSend(r, `{"contactId":"`+contact.ID.String()+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSendMessage_OversizedMessage(t *testing.T) {
	store, userID, contact := sendFixture()
	r := newSendRouter(store, userID, nil)

	long := strings.Repeat("a", services.MaxMessageLength+1)
	w := postSend(r, `{"contactId":"`+contact.ID.String()+`","customMessage":"`+long+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("oversized send must not log")
	}
}

func TestSendMessage_RateLimited(t *testing.T) {
	store, userID, contact := sendFixture()
	r := newSendRouter(store, userID, utils.NewUserRateLimiter(1, 1))

	payload := `{"contactId":"` + contact.ID.String() + `","customMessage":"hi"}`

	if w := postSend(r, payload); w.Code != http.StatusOK {
		t.Fatalf("first send should pass, status = %d", w.Code)
	}
	if w := postSend(r, payload); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second send should be limited, status = %d", w.Code)
	}
}
