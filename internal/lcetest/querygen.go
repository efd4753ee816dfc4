package lcetest

// QueryPair is a single (i, j) LCE query.
type QueryPair struct {
	I, J uint64
}

// GenerateQueryPairs deterministically produces count query pairs over
// a text of length n, mixing three shapes known to stress different
// code paths: uniformly random pairs, adjacent pairs (j = i+1, the
// minimal nontrivial LCE), and boundary pairs that pin one index near
// the end of the text (the region where successor lookups and
// fingerprint exponential search run out of room).
func GenerateQueryPairs(n int, count int, seed uint64) []QueryPair {
	if n == 0 || count <= 0 {
		return nil
	}

	stream := newByteStream(expandSeed(seed, count*17))
	pairs := make([]QueryPair, count)

	for k := range pairs {
		switch k % 3 {
		case 0:
			pairs[k] = QueryPair{I: uint64(stream.nextIntn(n)), J: uint64(stream.nextIntn(n))}
		case 1:
			i := stream.nextIntn(n)
			j := i + 1
			if j >= n {
				j = i
			}
			pairs[k] = QueryPair{I: uint64(i), J: uint64(j)}
		default:
			i := stream.nextIntn(n)
			j := n - 1 - stream.nextIntn(min(n, 8))
			if j < 0 {
				j = 0
			}
			pairs[k] = QueryPair{I: uint64(i), J: uint64(j)}
		}
	}

	return pairs
}
