package basket

import "strconv"

// Transaction is one output line: a customer id and the basket sampled for it.
type Transaction struct {
	Customer int
	Items    []int
}

// AppendLine appends the text form of t, terminated by '\n', to dst.
func (t Transaction) AppendLine(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(t.Customer), 10)
	for _, item := range t.Items {
		dst = append(dst, ' ')
		dst = strconv.AppendInt(dst, int64(item), 10)
	}
	return append(dst, '\n')
}

// String returns the line without its terminator.
func (t Transaction) String() string {
	line := t.AppendLine(nil)
	return string(line[:len(line)-1])
}
