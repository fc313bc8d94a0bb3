package writer

// MemWriter captures bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteData stores a copy of buf.
func (w *MemWriter) WriteData(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
