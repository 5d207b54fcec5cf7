package chat

// bufferedMessage records the user ID associated with a recent message ID, so that we
// can identify all relevant message IDs given an offending user ID
type bufferedMessage struct {
	userId    string
	messageId string
}

// messageBuffer is a fixed-size ring buffer recording the user IDs associated with the
// N most recent messages in a single channel
type messageBuffer struct {
	messages  []bufferedMessage
	capacity  int
	size      int
	headIndex int
}

// newMessageBuffer initializes an empty messageBuffer that will hold userId:messageId
// pairs up to the given capacity
func newMessageBuffer(capacity int) *messageBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &messageBuffer{
		messages: make([]bufferedMessage, capacity),
		capacity: capacity,
	}
}

// add registers a new item recording the fact that the given user sent a message with
// the given ID, potentially ejecting the oldest item from the buffer in the process
func (b *messageBuffer) add(userId string, messageId string) {
	b.messages[b.headIndex] = bufferedMessage{userId: userId, messageId: messageId}
	b.headIndex = (b.headIndex + 1) % b.capacity
	b.size = min(b.size+1, b.capacity)
}

// resolveMessageIds returns the IDs of all buffered messages sent by the user with the
// given ID, oldest first. Messages that have already been removed are skipped.
func (b *messageBuffer) resolveMessageIds(userId string) []string {
	results := make([]string, 0, 8)
	b.each(func(m *bufferedMessage) {
		if m.messageId != "" && m.userId == userId {
			results = append(results, m.messageId)
		}
	})
	return results
}

// remove forgets the given message IDs, so that they won't be reported as deleted a
// second time
func (b *messageBuffer) remove(messageIds ...string) {
	if len(messageIds) == 0 {
		return
	}
	targets := make(map[string]struct{}, len(messageIds))
	for _, id := range messageIds {
		targets[id] = struct{}{}
	}
	b.each(func(m *bufferedMessage) {
		if _, ok := targets[m.messageId]; ok {
			*m = bufferedMessage{}
		}
	})
}

// reset empties the buffer
func (b *messageBuffer) reset() {
	for i := range b.messages {
		b.messages[i] = bufferedMessage{}
	}
	b.size = 0
	b.headIndex = 0
}

// each visits every occupied slot in the buffer, from oldest to newest
func (b *messageBuffer) each(f func(m *bufferedMessage)) {
	start := (b.headIndex - b.size + b.capacity) % b.capacity
	for i := 0; i < b.size; i++ {
		f(&b.messages[(start+i)%b.capacity])
	}
}
