package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}
	if tt.UnixMicro() != now.UnixMicro() {
		t.Errorf("UnixMicro() = %v, want %v", tt.UnixMicro(), now.UnixMicro())
	}
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}
}

func TestTime_MarshalJSONUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	tt := Time(time.Date(2024, 3, 5, 18, 30, 0, 123456000, loc))

	data, err := json.Marshal(tt)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if got, want := string(data), `"2024-03-05T10:30:00.123456Z"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var back Time
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Time().Equal(tt.Time()) {
		t.Errorf("round trip = %v, want %v", back.Time(), tt.Time())
	}
}

func TestTime_UnmarshalRejectsGarbage(t *testing.T) {
	var tt Time
	if err := json.Unmarshal([]byte(`"yesterday"`), &tt); err == nil {
		t.Error("expected error for unparsable time")
	}
}
