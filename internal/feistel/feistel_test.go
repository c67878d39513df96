package feistel

import (
	"math/rand"
	"testing"

	"github.com/optable/permute/internal/hash"
)

func TestBlockBits(t *testing.T) {
	blockBitsTests := []struct {
		n    uint64
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 4},
		{16, 4},
		{17, 6},
		{1000, 10},
		{1024, 10},
		{1025, 12},
		{1 << 62, 62},
	}

	for _, tt := range blockBitsTests {
		got := BlockBits(tt.n)
		if got != tt.want {
			t.Errorf("BlockBits(%d): want: %d, got: %d", tt.n, tt.want, got)
		}
		if got&1 == 1 {
			t.Errorf("BlockBits(%d) = %d is odd", tt.n, got)
		}
		if tt.n > 1 && uint64(1)<<got < tt.n {
			t.Errorf("BlockBits(%d) = %d, block space too small", tt.n, got)
		}
	}
}

func TestNewNetworkValidation(t *testing.T) {
	h := hash.NewMurmur3Hasher()
	if _, err := NewNetwork(7, 0, 4, h); err != ErrOddBits {
		t.Errorf("odd width: want ErrOddBits, got %v", err)
	}
	if _, err := NewNetwork(8, 0, 0, h); err != ErrNoRounds {
		t.Errorf("zero rounds: want ErrNoRounds, got %v", err)
	}
	if _, err := NewNetwork(8, 0, 4, nil); err != ErrNilHasher {
		t.Errorf("nil hasher: want ErrNilHasher, got %v", err)
	}
}

// the inverse is structural: it must hold for every round count, not
// just the recommended one
func TestRoundtripAllRounds(t *testing.T) {
	h := hash.NewMurmur3Hasher()
	for rounds := 1; rounds <= 8; rounds++ {
		f, err := NewNetwork(10, 99, rounds, h)
		if err != nil {
			t.Fatal(err)
		}
		for x := uint64(0); x < f.BlockSize(); x++ {
			y := f.Encrypt(x)
			if y >= f.BlockSize() {
				t.Fatalf("rounds=%d: Encrypt(%d) = %d escapes the block space", rounds, x, y)
			}
			if z := f.Decrypt(y); z != x {
				t.Fatalf("rounds=%d: Decrypt(Encrypt(%d)) = %d", rounds, x, z)
			}
			if z := f.Encrypt(f.Decrypt(x)); z != x {
				t.Fatalf("rounds=%d: Encrypt(Decrypt(%d)) = %d", rounds, x, z)
			}
		}
	}
}

func TestEncryptIsBijection(t *testing.T) {
	h := hash.NewMetroHasher()
	f, err := NewNetwork(12, 7, 4, h)
	if err != nil {
		t.Fatal(err)
	}
	seen := make([]bool, f.BlockSize())
	for x := uint64(0); x < f.BlockSize(); x++ {
		y := f.Encrypt(x)
		if seen[y] {
			t.Fatalf("Encrypt maps two inputs to %d", y)
		}
		seen[y] = true
	}
}

func TestRoundtripWideBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, width := range []int{32, 48, 62} {
		f, err := NewNetwork(width, r.Uint64(), 4, hash.NewXXH3Hasher())
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 1000; i++ {
			x := r.Uint64() & (f.BlockSize() - 1)
			if z := f.Decrypt(f.Encrypt(x)); z != x {
				t.Fatalf("width=%d: Decrypt(Encrypt(%d)) = %d", width, x, z)
			}
		}
	}
}

func TestSeedChangesCipher(t *testing.T) {
	h := hash.NewMurmur3Hasher()
	a, _ := NewNetwork(16, 1, 4, h)
	b, _ := NewNetwork(16, 2, 4, h)
	differ := false
	for x := uint64(0); x < 256; x++ {
		if a.Encrypt(x) != b.Encrypt(x) {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("seeds 1 and 2 produced identical ciphers on [0,256)")
	}
}

func BenchmarkEncrypt(b *testing.B) {
	f, _ := NewNetwork(40, 1234, 4, hash.NewMurmur3Hasher())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Encrypt(uint64(i) & (f.BlockSize() - 1))
	}
}

func BenchmarkDecrypt(b *testing.B) {
	f, _ := NewNetwork(40, 1234, 4, hash.NewMurmur3Hasher())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Decrypt(uint64(i) & (f.BlockSize() - 1))
	}
}
