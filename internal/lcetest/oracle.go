package lcetest

// NaiveLCE scans text byte by byte and returns the length of the
// longest common prefix of text[i:] and text[j:]. This is the ground
// truth every index's LCE is checked against.
func NaiveLCE(text []byte, i, j uint64) uint64 {
	n := uint64(len(text))

	var l uint64
	for i+l < n && j+l < n && text[i+l] == text[j+l] {
		l++
	}

	return l
}
