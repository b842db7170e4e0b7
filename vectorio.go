package fileiotool

func iovsTotalLen(iovs [][]byte) int {
	var total int
	for _, iov := range iovs {
		total += len(iov)
	}
	return total
}

// iovsFill distributes n bytes over iovs in order and returns how many
// bytes each iovec received.
func iovsFill(iovs [][]byte, n int) []int {
	fill := make([]int, len(iovs))
	for i, iov := range iovs {
		if n <= 0 {
			break
		}
		if n >= len(iov) {
			fill[i] = len(iov)
		} else {
			fill[i] = n
		}
		n -= fill[i]
	}
	return fill
}
