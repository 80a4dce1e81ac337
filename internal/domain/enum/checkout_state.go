package enum

import "encoding/json"

// CheckoutState represents where a delivery checkout flow currently is
type CheckoutState int

const (
	CheckoutIdle      CheckoutState = 0
	CheckoutPrepared  CheckoutState = 1
	CheckoutDelivered CheckoutState = 2
)

func (s CheckoutState) String() string {
	return [...]string{"Idle", "Prepared", "Delivered"}[s]
}

func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CheckoutState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CheckoutState(i)
		return nil
	}
	switch str {
	case "Idle":
		*s = CheckoutIdle
	case "Prepared":
		*s = CheckoutPrepared
	case "Delivered":
		*s = CheckoutDelivered
	}
	return nil
}
