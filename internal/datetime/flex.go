package datetime

import (
	"encoding/json"
	"strconv"
)

// FlexDate decodes the date shapes legacy clients emit interchangeably:
// "2024-01-05", "05-01-2024", 20240105, or [2024, 1, 5]. The decoded value
// is already canonical; the raw union never leaves this type.
type FlexDate string

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = FlexDate(NormalizeDate(s))
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = FlexDate(NormalizeDate(strconv.FormatInt(n, 10)))
		return nil
	}

	var tuple []int
	if err := json.Unmarshal(data, &tuple); err == nil {
		*d = FlexDate(NormalizeDate(tuple))
		return nil
	}

	// Unknown shape degrades to empty, matching the fail-soft policy.
	*d = ""
	return nil
}

func (d FlexDate) String() string { return string(d) }

// FlexTime decodes "15:00", "3:00 PM", 930, or {"hour":9,"minute":30}
// into canonical "HH:mm". Unrecognized shapes decode to "".
type FlexTime string

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = FlexTime(NormalizeTime(s))
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = FlexTime(NormalizeTime(n))
		return nil
	}

	var tod TimeOfDay
	if err := json.Unmarshal(data, &tod); err == nil {
		*t = FlexTime(NormalizeTime(tod))
		return nil
	}

	*t = ""
	return nil
}

func (t FlexTime) String() string { return string(t) }
