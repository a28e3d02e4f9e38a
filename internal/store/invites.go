package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// InviteAttempt is one submission attempt as the backend answered it.
// Success mirrors the payload-level flag; transport failures are recorded
// with Success=false and the transport message.
type InviteAttempt struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	Position    string    `json:"position"`
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

// RecordAttempt appends to the audit log. ID and AttemptedAt are filled in
// when zero.
func (d *DB) RecordAttempt(ctx context.Context, a InviteAttempt) (InviteAttempt, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AttemptedAt.IsZero() {
		a.AttemptedAt = time.Now().UTC()
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO invite_attempts (id, student_id, position, success, message, attempted_at)
VALUES (?, ?, ?, ?, ?, ?);`,
		a.ID, a.StudentID, a.Position, boolToInt(a.Success), a.Message,
		a.AttemptedAt.Format(time.RFC3339),
	)
	if err != nil {
		return a, errors.Wrap(err, "record invite attempt")
	}
	return a, nil
}

// ListAttempts returns the audit log, newest first.
func (d *DB) ListAttempts(ctx context.Context, limit int) ([]InviteAttempt, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := d.Pool.QueryContext(ctx, `
SELECT id, student_id, position, success, message, attempted_at
FROM invite_attempts
ORDER BY attempted_at DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list invite attempts")
	}
	defer rows.Close()

	out := make([]InviteAttempt, 0)
	for rows.Next() {
		var a InviteAttempt
		var success int
		var at string
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Position, &success, &a.Message, &at); err != nil {
			return nil, errors.Wrap(err, "scan invite attempt")
		}
		a.Success = success != 0
		a.AttemptedAt, _ = time.Parse(time.RFC3339, at)
		out = append(out, a)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
