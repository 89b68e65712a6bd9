package cipher_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hill/cipher"
	"github.com/katalvlaran/hill/codec"
	"github.com/katalvlaran/hill/matrix"
)

func ExampleCipher() {
	key, _ := codec.ParseKey("3 3 2 5", 2)
	c, _ := cipher.New(key)

	ct, _ := c.Encrypt("Help!")
	pt, _ := c.Decrypt(ct)
	fmt.Println(ct, pt)
	// Output:
	// HIAT HELP
}

func ExampleCipher_singularKey() {
	key, _ := codec.ParseKey("6 24 1 13", 2)
	c, _ := cipher.New(key)

	ct, _ := c.Encrypt("help")
	_, err := c.Decrypt(ct)
	fmt.Println(ct, errors.Is(err, matrix.ErrNotInvertible))
	// Output:
	// IHKY true
}

func ExampleTransformText() {
	key, _ := codec.KeyFromWord("GYBNQKURP", 3)
	idx, _ := codec.ToIndices("ACT")

	out, _ := cipher.TransformText(key, idx, 3)
	text, _ := codec.ToText(out)
	fmt.Println(out, text)
	// Output:
	// [15 14 7] POH
}
