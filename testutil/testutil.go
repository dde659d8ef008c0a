package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/rowindex/record"
)

// BooksJSON is the book collection as a JSON array.
const BooksJSON = `[
	{"title": "Lord of the rings", "data": [5, 6, 43, 21, 88], "author": "Tolkien", "volumes": 3},
	{"title": "Winnie the Pooh", "data": [1, 2, 34, 5], "author": "Milne", "volumes": 1},
	{"title": "Prelude to Foundation", "data": [99, 1], "author": "Asimov", "volumes": 1}
]`

// Books returns a fresh copy of the three-book collection.
func Books() []record.Record {
	return []record.Record{
		{
			"title":   record.String("Lord of the rings"),
			"data":    Ints(5, 6, 43, 21, 88),
			"author":  record.String("Tolkien"),
			"volumes": record.Int(3),
		},
		{
			"title":   record.String("Winnie the Pooh"),
			"data":    Ints(1, 2, 34, 5),
			"author":  record.String("Milne"),
			"volumes": record.Int(1),
		},
		{
			"title":   record.String("Prelude to Foundation"),
			"data":    Ints(99, 1),
			"author":  record.String("Asimov"),
			"volumes": record.Int(1),
		},
	}
}

// Ints builds an array value of integers.
func Ints(vs ...int64) record.Value {
	arr := make([]record.Value, len(vs))
	for i, v := range vs {
		arr[i] = record.Int(v)
	}
	return record.Array(arr)
}

var words = []string{
	"the", "of", "and", "rings", "foundation", "pooh", "winnie", "lord",
	"prelude", "house", "corner", "empire", "robot", "hobbit", "return", "king",
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Records generates num book-like records. Record i has a unique "id"
// equal to i, so unique indexes over "id" always build.
func (r *RNG) Records(num int) []record.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]record.Record, num)
	for i := range out {
		title := make([]string, 2+r.rand.Intn(4))
		for j := range title {
			title[j] = words[r.rand.Intn(len(words))]
		}
		data := make([]record.Value, 1+r.rand.Intn(6))
		for j := range data {
			data[j] = record.Int(int64(r.rand.Intn(100)))
		}
		out[i] = record.Record{
			"id":      record.Int(int64(i)),
			"title":   record.String(strings.Join(title, " ")),
			"data":    record.Array(data),
			"volumes": record.Int(int64(1 + r.rand.Intn(5))),
		}
	}
	return out
}
