package utils

import (
	"encoding/json"
	"time"
)

type RFC3339Date struct {
	time.Time
}

func (d RFC3339Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// UnmarshalJSON принимает как полные метки времени RFC3339, так и «голые» даты
// вида 2025-01-10, которые присылает форма оформления заказа. Нераспознанное
// значение трактуется как отсутствующая дата, а не как ошибка запроса.
func (d *RFC3339Date) UnmarshalJSON(data []byte) error {
	var str *string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == nil || *str == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, *str); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse("2006-01-02", *str); err == nil {
		d.Time = t
		return nil
	}
	d.Time = time.Time{}
	return nil
}
