package tui

// ByteSource supplies raw input bytes.
type ByteSource interface {
	// ReadByte blocks until one byte is available.
	ReadByte() (byte, error)

	// ReadPending returns up to n bytes that can be read without waiting.
	// ok is false when nothing is pending; that is an expected outcome.
	ReadPending(n int) (data []byte, ok bool)
}

// KeyReader decodes logical keys from a ByteSource.
type KeyReader struct {
	src ByteSource
}

// NewKeyReader returns a KeyReader over src.
func NewKeyReader(src ByteSource) *KeyReader {
	return &KeyReader{src: src}
}

// ReadKey blocks for the first byte of a keystroke and returns exactly one
// key. After ESC it takes up to three and then up to two more bytes that are
// already available, without waiting for either.
func (r *KeyReader) ReadKey() (Key, error) {
	b, err := r.src.ReadByte()
	if err != nil {
		return Key{}, err
	}

	seq := []byte{b}
	if b == byteEsc {
		if more, ok := r.src.ReadPending(3); ok {
			seq = append(seq, more...)
		}
		if more, ok := r.src.ReadPending(2); ok {
			seq = append(seq, more...)
		}
	}
	return DecodeKey(seq), nil
}

// ReadLine reads bytes until a newline or end of input and returns the line
// without its terminator. Used while the terminal is in cooked mode.
func ReadLine(src ByteSource) (string, error) {
	var line []byte
	for {
		b, err := src.ReadByte()
		if err != nil {
			if len(line) > 0 {
				return trimCR(line), nil
			}
			return "", err
		}
		if b == '\n' {
			return trimCR(line), nil
		}
		line = append(line, b)
	}
}

func trimCR(line []byte) string {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return string(line)
}
