package model

// Field names a single numeric column of a Bar.
type Field string

const (
	FieldOpen     Field = "open"
	FieldHigh     Field = "high"
	FieldLow      Field = "low"
	FieldClose    Field = "close"
	FieldAdjClose Field = "adj_close"
	FieldVolume   Field = "volume"
)

// Value returns the named field of the bar, or false for an unknown field.
func (b Bar) Value(f Field) (float64, bool) {
	switch f {
	case FieldOpen:
		return b.Open, true
	case FieldHigh:
		return b.High, true
	case FieldLow:
		return b.Low, true
	case FieldClose:
		return b.Close, true
	case FieldAdjClose:
		return b.AdjClose, true
	case FieldVolume:
		return b.Volume, true
	default:
		return 0, false
	}
}
