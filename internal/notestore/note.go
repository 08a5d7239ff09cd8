// Package notestore is the HTTP client of the note store (GET/POST/DELETE /notes).
package notestore

import (
	"bytes"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// NoteID is assigned by the store and compared by exact value only.
// The store sends integers; strings are accepted too.
type NoteID string

func (id NoteID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON number or string.
func (id *NoteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("note id is null")
	}
	if data[0] == '"' {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "note id")
		}
		*id = NoteID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return errors.Errorf("note id %s is neither number nor string", data)
	}
	*id = NoteID(data)
	return nil
}

// MarshalJSON writes canonical integers as numbers and everything else as a string,
// so ids such as "007" keep their text.
func (id NoteID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return sonic.Marshal(string(id))
}

// Note as returned by the store.
type Note struct {
	ID        NoteID `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// CreatedTime parses CreatedAt. Timestamps without a zone are UTC.
func (n Note) CreatedTime() (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, n.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type createRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type messageBody struct {
	Message string `json:"message"`
}
