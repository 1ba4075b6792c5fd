package models

// Message is a single inbox entry.
type Message struct {
	Subject     string
	Description string
	Read        bool
}

type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)
