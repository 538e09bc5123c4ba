package simulator

import (
	"fmt"
	"log"

	"github.com/xitongsys/parquet-go/schema"
)

// BaseEvent is the common structure for all emitted events.
type BaseEvent struct {
	Timestamp int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	VenueID   string `json:"venueId" parquet:"name=venueId,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// ArrivalEvent marks a new group entering a venue.
type ArrivalEvent struct {
	BaseEvent
	GroupID      string  `json:"groupId" parquet:"name=groupId,type=BYTE_ARRAY,convertedtype=UTF8"`
	CustomerType string  `json:"customerType" parquet:"name=customerType,type=BYTE_ARRAY,convertedtype=UTF8"`
	GroupSize    int32   `json:"groupSize" parquet:"name=groupSize,type=INT32"`
	Budget       float64 `json:"budget" parquet:"name=budget,type=DOUBLE"`
}

// SeatedEvent marks a group acquiring a table.
type SeatedEvent struct {
	BaseEvent
	GroupID     string `json:"groupId" parquet:"name=groupId,type=BYTE_ARRAY,convertedtype=UTF8"`
	TableID     string `json:"tableId" parquet:"name=tableId,type=BYTE_ARRAY,convertedtype=UTF8"`
	TableSize   string `json:"tableSize" parquet:"name=tableSize,type=BYTE_ARRAY,convertedtype=UTF8"`
	WaitMinutes int32  `json:"waitMinutes" parquet:"name=waitMinutes,type=INT32"`
}

// OrderPlacedEvent marks an order finalized against inventory.
type OrderPlacedEvent struct {
	BaseEvent
	GroupID     string  `json:"groupId" parquet:"name=groupId,type=BYTE_ARRAY,convertedtype=UTF8"`
	StaffID     string  `json:"staffId,omitempty" parquet:"name=staffId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemCount   int32   `json:"itemCount" parquet:"name=itemCount,type=INT32"`
	TotalAmount float64 `json:"totalAmount" parquet:"name=totalAmount,type=DOUBLE"`
}

// OrderServedEvent marks every item in an order prepared and delivered.
type OrderServedEvent struct {
	BaseEvent
	GroupID     string `json:"groupId" parquet:"name=groupId,type=BYTE_ARRAY,convertedtype=UTF8"`
	StaffID     string `json:"staffId,omitempty" parquet:"name=staffId,type=BYTE_ARRAY,convertedtype=UTF8"`
	WaitMinutes int32  `json:"waitMinutes" parquet:"name=waitMinutes,type=INT32"`
}

// PaymentEvent marks a settled bill.
type PaymentEvent struct {
	BaseEvent
	GroupID      string  `json:"groupId" parquet:"name=groupId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Amount       float64 `json:"amount" parquet:"name=amount,type=DOUBLE"`
	TotalSpent   float64 `json:"totalSpent" parquet:"name=totalSpent,type=DOUBLE"`
	VisitMinutes int32   `json:"visitMinutes" parquet:"name=visitMinutes,type=INT32"`
}

// DepartureEvent marks a group leaving for any reason, forced or natural.
type DepartureEvent struct {
	BaseEvent
	GroupID      string  `json:"groupId" parquet:"name=groupId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Reason       string  `json:"reason" parquet:"name=reason,type=BYTE_ARRAY,convertedtype=UTF8"`
	Satisfaction float64 `json:"satisfaction" parquet:"name=satisfaction,type=DOUBLE"`
	Patience     float64 `json:"patience" parquet:"name=patience,type=DOUBLE"`
	TotalSpent   float64 `json:"totalSpent" parquet:"name=totalSpent,type=DOUBLE"`
	VisitMinutes int32   `json:"visitMinutes" parquet:"name=visitMinutes,type=INT32"`
}

// VenueStatusEvent is an hourly snapshot of venue-level aggregates.
type VenueStatusEvent struct {
	BaseEvent
	Popularity           float64 `json:"popularity" parquet:"name=popularity,type=DOUBLE"`
	CustomerSatisfaction float64 `json:"customerSatisfaction" parquet:"name=customerSatisfaction,type=DOUBLE"`
	DailyRevenue         float64 `json:"dailyRevenue" parquet:"name=dailyRevenue,type=DOUBLE"`
	Occupancy            int32   `json:"occupancy" parquet:"name=occupancy,type=INT32"`
	Capacity             int32   `json:"capacity" parquet:"name=capacity,type=INT32"`
	ActiveGroups         int32   `json:"activeGroups" parquet:"name=activeGroups,type=INT32"`
}

func GetSchema(topic string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch topic {
	case "customer_arrival_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(ArrivalEvent))
	case "customer_seated_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(SeatedEvent))
	case "order_placed_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(OrderPlacedEvent))
	case "order_served_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(OrderServedEvent))
	case "payment_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(PaymentEvent))
	case "customer_departure_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(DepartureEvent))
	case "venue_status_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(VenueStatusEvent))
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}

	if err != nil {
		log.Printf("Error creating schema for %s: %v", topic, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}
	return sh, nil
}

func (s *Simulator) newBaseEvent(eventType, venueID string) BaseEvent {
	return BaseEvent{
		Timestamp: s.Clock.Time().Unix(),
		EventType: eventType,
		VenueID:   venueID,
	}
}
