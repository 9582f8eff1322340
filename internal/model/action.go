package model

// Action is a human-friendly operating mode for an hour.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// ActionFromNetKWh maps net generation (generation - load) to the storage mode
// it triggers: a surplus charges, a shortfall discharges.
func ActionFromNetKWh(netKWh float64) Action {
	switch {
	case netKWh > 0:
		return ActionCharging
	case netKWh < 0:
		return ActionDischarging
	default:
		return ActionIdle
	}
}
