package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/adapter/http/fiber/views"
	"github.com/seu-repo/medsys/internal/domain"
)

const flashKey = "flashes"

// Flashes keeps one-time notices in the visitor's session until the next
// rendered page consumes them.
type Flashes struct {
	store *session.Store
	log   *zap.Logger
}

func NewFlashes(store *session.Store, log *zap.Logger) *Flashes {
	return &Flashes{
		store: store,
		log:   log,
	}
}

// Push queues a notice for the next rendered page.
func (f *Flashes) Push(c *fiber.Ctx, category domain.FlashCategory, message string) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return err
	}
	pending := decodeFlashes(sess.Get(flashKey))
	pending = append(pending, domain.Flash{Category: category, Message: message})

	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	sess.Set(flashKey, string(raw))
	return sess.Save()
}

// Pop returns and clears the queued notices. Session failures only cost the
// notices, never the page.
func (f *Flashes) Pop(c *fiber.Ctx) []domain.Flash {
	sess, err := f.store.Get(c)
	if err != nil {
		f.log.Warn("Failed to load session", zap.Error(err))
		return nil
	}
	pending := decodeFlashes(sess.Get(flashKey))
	if len(pending) == 0 {
		return nil
	}
	sess.Delete(flashKey)
	if err := sess.Save(); err != nil {
		f.log.Warn("Failed to save session", zap.Error(err))
	}
	return pending
}

// Render renders a page inside the main layout with the queued notices plus
// any notices raised while handling this request.
func (f *Flashes) Render(c *fiber.Ctx, page string, bind fiber.Map, now ...domain.Flash) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Flashes"] = append(f.Pop(c), now...)
	return c.Render(page, bind, views.Layout)
}

func decodeFlashes(v interface{}) []domain.Flash {
	raw, ok := v.(string)
	if !ok || raw == "" {
		return nil
	}
	var flashes []domain.Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		return nil
	}
	return flashes
}
