package domain

// MessageID identifies one slot of the message catalog.
type MessageID int

const (
	MsgUsage MessageID = iota
	MsgExample
	MsgErrorPositive
	MsgHeader
	MsgStartTime
	MsgProcessID
	MsgThreadID
	MsgCountdownStart
	MsgSeparator
	MsgRemainingTime
	MsgEndTime
	MsgProcessComplete

	messageCount
)

// InvalidMessage is returned by catalog lookups for ids outside the enumeration.
const InvalidMessage = "Invalid message ID"

var messageKeys = [messageCount]string{
	MsgUsage:           "Usage",
	MsgExample:         "Example",
	MsgErrorPositive:   "ErrorPositive",
	MsgHeader:          "Header",
	MsgStartTime:       "StartTime",
	MsgProcessID:       "ProcessID",
	MsgThreadID:        "ThreadID",
	MsgCountdownStart:  "CountdownStart",
	MsgSeparator:       "Separator",
	MsgRemainingTime:   "RemainingTime",
	MsgEndTime:         "EndTime",
	MsgProcessComplete: "ProcessComplete",
}

// Number of printf verbs each template must carry, i.e. the number of
// arguments every call site passes.
var messageArity = [messageCount]int{
	MsgUsage:           1, // program name
	MsgExample:         1, // program name
	MsgErrorPositive:   0,
	MsgHeader:          1, // platform
	MsgStartTime:       1, // timestamp
	MsgProcessID:       1, // pid
	MsgThreadID:        1, // tid
	MsgCountdownStart:  1, // seconds
	MsgSeparator:       0,
	MsgRemainingTime:   2, // seconds left, pid
	MsgEndTime:         1, // timestamp
	MsgProcessComplete: 1, // pid
}

// AllMessageIDs returns every valid id in declaration order.
func AllMessageIDs() []MessageID {
	ids := make([]MessageID, 0, messageCount)
	for id := MessageID(0); id < messageCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// MessageCount is the number of catalog slots per language.
func MessageCount() int {
	return int(messageCount)
}

// Valid reports whether id names a catalog slot.
func (id MessageID) Valid() bool {
	return id >= 0 && id < messageCount
}

// Key is the message identifier used in the catalog files.
func (id MessageID) Key() string {
	if !id.Valid() {
		return ""
	}
	return messageKeys[id]
}

// Arity is the number of format arguments the template expects.
// Invalid ids report -1.
func (id MessageID) Arity() int {
	if !id.Valid() {
		return -1
	}
	return messageArity[id]
}

func (id MessageID) String() string {
	if !id.Valid() {
		return "MessageID(invalid)"
	}
	return messageKeys[id]
}
