package jsonwire

import "time"

// appendTime renders t as a quoted RFC 3339 timestamp. OptUTC converts
// to UTC first (offset renders as 'Z'); OptOmitMicroseconds truncates
// to whole seconds. Sub-second digits appear only when present.
func appendTime(dst []byte, t time.Time, opts Options) []byte {
	if opts.Has(OptUTC) {
		t = t.UTC()
	}
	if opts.Has(OptOmitMicroseconds) {
		t = t.Truncate(time.Second)
	}
	dst = append(dst, '"')
	dst = t.AppendFormat(dst, time.RFC3339Nano)
	return append(dst, '"')
}
