package domain

type FlashCategory string

const (
	FlashSuccess FlashCategory = "success"
	FlashWarning FlashCategory = "warning"
	FlashDanger  FlashCategory = "danger"
)

// Flash is a one-time notice shown on the next rendered page.
type Flash struct {
	Category FlashCategory `json:"category"`
	Message  string        `json:"message"`
}
