package locationevents

const (
	TopicName              = "location"
	locationRegisteredName = TopicName + ".registered"
	locationSelectedName   = TopicName + ".selected"
	locationDeletedName    = TopicName + ".deleted"
)

type LocationRegistered struct {
	UserID       string
	LocationID   string
	LocationName string
}

func (e LocationRegistered) GetEventTypeName() string {
	return locationRegisteredName
}

func (e LocationRegistered) GetAggregateName() string {
	return e.LocationID
}

type LocationSelected struct {
	UserID       string
	LocationID   string
	LocationName string
}

func (e LocationSelected) GetEventTypeName() string {
	return locationSelectedName
}

func (e LocationSelected) GetAggregateName() string {
	return e.LocationID
}

type LocationDeleted struct {
	UserID     string
	LocationID string
	WasActive  bool
}

func (e LocationDeleted) GetEventTypeName() string {
	return locationDeletedName
}

func (e LocationDeleted) GetAggregateName() string {
	return e.LocationID
}
