package gridscroll

// ContentSize returns the total scrollable extent for dataLength items:
// dataLength*RowHeight + HeaderHeight + FooterHeight.
//
// A partial last row is extrapolated linearly rather than rounded up to a full
// row, so with 3 columns and 10 items the items account for 10/3 rows.
func ContentSize(dataLength int, l Layout) float64 {
	if dataLength < 0 {
		dataLength = 0
	}
	return float64(dataLength)*l.RowHeight() + l.HeaderHeight + l.FooterHeight
}
