package domain

type DeliveryStatus string

const (
	DeliverySkipped   DeliveryStatus = "skipped"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

// DeliveryOutcome is the result of a notification attempt. Reason is only set on failure.
type DeliveryOutcome struct {
	Status DeliveryStatus
	Reason string
}

func Skipped() DeliveryOutcome {
	return DeliveryOutcome{Status: DeliverySkipped}
}

func Delivered() DeliveryOutcome {
	return DeliveryOutcome{Status: DeliveryDelivered}
}

func Failed(reason string) DeliveryOutcome {
	return DeliveryOutcome{Status: DeliveryFailed, Reason: reason}
}

func (o DeliveryOutcome) String() string {
	if o.Status == DeliveryFailed {
		return string(o.Status) + ": " + o.Reason
	}
	return string(o.Status)
}
