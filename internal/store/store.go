// Package store holds the inbox messages and the values derived from them.
package store

import (
	"errors"
	"fmt"

	"github.com/saravenpi/inbox/internal/models"
)

var ErrIndexOutOfRange = errors.New("message index out of range")

// Store owns the message sequence. Listeners registered with Subscribe are
// called synchronously after every mutation that changes state.
// A Store is not safe for concurrent use.
type Store struct {
	messages  []models.Message
	listeners []*listener
}

type listener struct {
	fn func()
}

// New returns an empty store.
func New() *Store {
	return &Store{messages: []models.Message{}}
}

// SetMessages replaces the whole message sequence.
func (s *Store) SetMessages(messages []models.Message) {
	if messages == nil {
		messages = []models.Message{}
	}
	s.messages = messages
	s.notify()
}

// Messages returns the current sequence. Elements may be modified in place.
func (s *Store) Messages() []models.Message {
	return s.messages
}

// Message returns a copy of the message at index.
func (s *Store) Message(index int) (models.Message, error) {
	if err := s.checkIndex(index); err != nil {
		return models.Message{}, err
	}
	return s.messages[index], nil
}

func (s *Store) MessageCount() int {
	return len(s.messages)
}

func (s *Store) UnreadMessageCount() int {
	unread := 0
	for _, message := range s.messages {
		if !message.Read {
			unread++
		}
	}
	return unread
}

// MarkRead flags the message at index as read. Marking an already read
// message succeeds without notifying listeners.
func (s *Store) MarkRead(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	if s.messages[index].Read {
		return nil
	}

	s.messages[index].Read = true
	s.notify()
	return nil
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	l := &listener{fn: fn}
	s.listeners = append(s.listeners, l)

	return func() {
		for i, existing := range s.listeners {
			if existing == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.messages) {
		return fmt.Errorf("index %d with %d messages: %w", index, len(s.messages), ErrIndexOutOfRange)
	}
	return nil
}

func (s *Store) notify() {
	listeners := make([]*listener, len(s.listeners))
	copy(listeners, s.listeners)
	for _, l := range listeners {
		l.fn()
	}
}
