package seeder

import "fmt"

// KeySpace hands out batch-unique integers per column. It belongs to a single
// Assemble call and must not be shared between requests.
type KeySpace struct {
	min, max    int64
	maxAttempts int
	draw        func(min, max int) int
	used        map[string]map[int64]struct{}
}

func NewKeySpace(min, max int64, maxAttempts int, draw func(min, max int) int) *KeySpace {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &KeySpace{
		min:         min,
		max:         max,
		maxAttempts: maxAttempts,
		draw:        draw,
		used:        make(map[string]map[int64]struct{}),
	}
}

func (k *KeySpace) Size() int64 {
	return k.max - k.min + 1
}

// Next draws a value not yet used for column. Random draws are retried up to
// maxAttempts times, then the span is probed linearly from a random start.
func (k *KeySpace) Next(column string) (int64, error) {
	used, ok := k.used[column]
	if !ok {
		used = make(map[int64]struct{})
		k.used[column] = used
	}

	span := k.Size()
	if int64(len(used)) >= span {
		return 0, fmt.Errorf("%w: column %s used all %d keys in [%d, %d]", ErrKeySpaceExhausted, column, span, k.min, k.max)
	}

	for attempt := 0; attempt < k.maxAttempts; attempt++ {
		v := int64(k.draw(int(k.min), int(k.max)))
		if _, taken := used[v]; !taken {
			used[v] = struct{}{}
			return v, nil
		}
	}

	start := int64(k.draw(int(k.min), int(k.max))) - k.min
	for i := int64(0); i < span; i++ {
		v := k.min + (start+i)%span
		if _, taken := used[v]; !taken {
			used[v] = struct{}{}
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: column %s", ErrKeySpaceExhausted, column)
}

func (k *KeySpace) Used(column string) int {
	return len(k.used[column])
}
