package domain

// AuditCapacity bounds the intercepted-traffic buffer. Inserting beyond
// the capacity evicts the oldest record.
const AuditCapacity = 50

// InterceptedRecord wraps a relayed private message with its real
// endpoints, for the moderator monitor.
type InterceptedRecord struct {
	ID                  string
	OriginalSenderID    string
	OriginalRecipientID string
	Message             Message
}

// AuditBuffer is a bounded FIFO of intercepted private messages. It holds
// no role knowledge: gating who may record or read is the routing layer's
// job, the buffer is a plain bounded queue.
type AuditBuffer struct {
	records []InterceptedRecord
}

func NewAuditBuffer() *AuditBuffer {
	return &AuditBuffer{}
}

// Record appends an entry, evicting the oldest when the capacity is
// exceeded. len <= AuditCapacity holds after every call.
func (b *AuditBuffer) Record(r InterceptedRecord) {
	b.records = append(b.records, r)
	if len(b.records) > AuditCapacity {
		b.records = b.records[1:]
	}
}

// Snapshot returns the retained records, most recent first.
func (b *AuditBuffer) Snapshot() []InterceptedRecord {
	out := make([]InterceptedRecord, len(b.records))
	for i, r := range b.records {
		out[len(b.records)-1-i] = r
	}
	return out
}

func (b *AuditBuffer) Len() int {
	return len(b.records)
}
