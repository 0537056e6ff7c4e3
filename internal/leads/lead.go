package leads

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/James202017/real-estate-bots/core/form"
)

// Lead is one archived questionnaire result.
type Lead struct {
	ID        int64     `db:"id"`
	FormID    string    `db:"form_id"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Payload   Payload   `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

// Payload stores the answered fields in questionnaire order.
type Payload []form.Field

// Value implements driver.Valuer so sqlx can write the payload as jsonb.
func (p Payload) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal lead payload: %w", err)
	}
	return b, nil
}

// Scan implements sql.Scanner for jsonb columns.
func (p *Payload) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported lead payload type %T", src)
	}
}
