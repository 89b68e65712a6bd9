package cipher_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hill/cipher"
	"github.com/katalvlaran/hill/codec"
	"github.com/katalvlaran/hill/matrix"
)

// CipherSuite exercises Cipher sessions end to end.
type CipherSuite struct {
	suite.Suite
	textbook2 *matrix.Dense // [[3,3],[2,5]], det 9
	textbook3 *matrix.Dense // GYBNQKURP, det 25
	singular  *matrix.Dense // [[6,24],[1,13]], det 2
}

func (s *CipherSuite) SetupTest() {
	s.textbook2 = mustKey(s.T(), [][]int{{3, 3}, {2, 5}})
	s.textbook3 = mustKey(s.T(), [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}})
	s.singular = mustKey(s.T(), [][]int{{6, 24}, {1, 13}})
}

// TestGoldenHELP reproduces the classic textbook ciphertext.
func (s *CipherSuite) TestGoldenHELP() {
	c, err := cipher.New(s.textbook2)
	require.NoError(s.T(), err)

	ct, err := c.Encrypt("help")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "HIAT", ct)

	pt, err := c.Decrypt(ct)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "HELP", pt)
}

// TestGoldenACT reproduces the 3×3 textbook example.
func (s *CipherSuite) TestGoldenACT() {
	c, err := cipher.New(s.textbook3)
	require.NoError(s.T(), err)

	ct, err := c.Encrypt("ACT")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "POH", ct)

	pt, err := c.Decrypt("poh")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "ACT", pt)
}

// TestRoundTripWithPadding checks Decrypt(Encrypt(p)) == CleanText(p).
func (s *CipherSuite) TestRoundTripWithPadding() {
	c, err := cipher.New(s.textbook3)
	require.NoError(s.T(), err)

	raw := "Attack at dawn, retreat at dusk!"
	ct, err := c.Encrypt(raw)
	require.NoError(s.T(), err)
	require.Len(s.T(), ct, codec.PaddedLen(len(codec.Letters(raw)), 3))

	pt, err := c.Decrypt(ct)
	require.NoError(s.T(), err)
	want, err := codec.Clean(raw, 3, codec.DefaultFiller)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, pt)
	require.Equal(s.T(), "ATTACKATDAWNRETREATATDUSKXX", pt)
}

func (s *CipherSuite) TestCustomPadding() {
	c, err := cipher.New(s.textbook2, cipher.WithPadding('q'))
	require.NoError(s.T(), err)

	ct, err := c.Encrypt("abc")
	require.NoError(s.T(), err)
	pt, err := c.Decrypt(ct)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "ABCQ", pt)
}

// TestSingularKeyEncryptsOnly preserves the encrypt/decrypt asymmetry.
func (s *CipherSuite) TestSingularKeyEncryptsOnly() {
	c, err := cipher.New(s.singular)
	require.NoError(s.T(), err)
	require.False(s.T(), c.Invertible())

	ct, err := c.Encrypt("help")
	require.NoError(s.T(), err)
	require.Len(s.T(), ct, 4)

	_, err = c.Decrypt(ct)
	require.ErrorIs(s.T(), err, matrix.ErrNotInvertible)

	_, err = c.InverseKey()
	require.ErrorIs(s.T(), err, matrix.ErrNotInvertible)
}

func (s *CipherSuite) TestRequireInvertible() {
	_, err := cipher.New(s.singular, cipher.WithRequireInvertible())
	require.ErrorIs(s.T(), err, matrix.ErrNotInvertible)

	c, err := cipher.New(s.textbook2, cipher.WithRequireInvertible())
	require.NoError(s.T(), err)
	require.True(s.T(), c.Invertible())
}

func (s *CipherSuite) TestDecryptMisaligned() {
	c, err := cipher.New(s.textbook2)
	require.NoError(s.T(), err)

	_, err = c.Decrypt("HIA")
	require.ErrorIs(s.T(), err, cipher.ErrMisalignedInput)

	// separators are ignored, so this is 4 letters
	pt, err := c.Decrypt("HI-AT")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "HELP", pt)
}

func (s *CipherSuite) TestEmptyText() {
	c, err := cipher.New(s.textbook2)
	require.NoError(s.T(), err)

	ct, err := c.Encrypt("1234 !!")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "", ct)

	pt, err := c.Decrypt("")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "", pt)
}

func (s *CipherSuite) TestInvalidKeys() {
	one := mustKey(s.T(), [][]int{{3}})
	_, err := cipher.New(one)
	require.ErrorIs(s.T(), err, matrix.ErrInvalidBlockSize)

	big, err := matrix.NewIdentity(11)
	require.NoError(s.T(), err)
	_, err = cipher.New(big)
	require.ErrorIs(s.T(), err, matrix.ErrInvalidBlockSize)

	_, err = cipher.New(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

// TestKeyIsolation checks the session owns its key: neither the caller's
// matrix nor the returned copies can change it.
func (s *CipherSuite) TestKeyIsolation() {
	key := s.textbook2.Copy()
	c, err := cipher.New(key)
	require.NoError(s.T(), err)

	require.NoError(s.T(), key.Set(0, 0, 0))
	exported := c.Key()
	require.NoError(s.T(), exported.Set(1, 1, 0))
	inv, err := c.InverseKey()
	require.NoError(s.T(), err)
	require.NoError(s.T(), inv.Set(0, 0, 0))

	ct, err := c.Encrypt("help")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "HIAT", ct)
	pt, err := c.Decrypt(ct)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "HELP", pt)
}

func (s *CipherSuite) TestAccessors() {
	c, err := cipher.New(s.textbook3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, c.BlockSize())
	require.True(s.T(), c.Key().Equal(s.textbook3))

	inv, err := c.InverseKey()
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{{8, 5, 10}, {21, 8, 21}, {21, 12, 8}}, inv.ToRows())
	require.Regexp(s.T(), `^3x3:[0-9a-f]{16}$`, c.Fingerprint())
}

// TestConcurrentUse shares one session across goroutines.
func (s *CipherSuite) TestConcurrentUse() {
	c, err := cipher.New(s.textbook3)
	require.NoError(s.T(), err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ct, err := c.Encrypt("ACT")
				if err != nil {
					errs <- err
					return
				}
				pt, err := c.Decrypt(ct)
				if err != nil {
					errs <- err
					return
				}
				if pt != "ACT" || ct != "POH" {
					errs <- fmt.Errorf("got ct=%q pt=%q", ct, pt)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.T().Fatalf("concurrent use failed: %v", err)
	}
}

func TestCipherSuite(t *testing.T) {
	suite.Run(t, new(CipherSuite))
}

func TestWithPadding_PanicsOnNonLetter(t *testing.T) {
	require.Panics(t, func() { cipher.WithPadding('1') })
	require.NotPanics(t, func() { cipher.WithPadding('z') })
}
