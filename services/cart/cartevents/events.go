package cartevents

const (
	TopicName          = "cart"
	cartCheckedOutName = TopicName + ".checkedOut"
)

type CartCheckedOut struct {
	UserID       string
	LocationName string
	OrderID      string
	Total        string
}

func (e CartCheckedOut) GetEventTypeName() string {
	return cartCheckedOutName
}

func (e CartCheckedOut) GetAggregateName() string {
	return e.OrderID
}
