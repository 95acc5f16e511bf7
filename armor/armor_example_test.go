package armor

import "fmt"

func ExampleEncodeBase64() {
	encoded := EncodeBase64([]byte("Plain Text"))
	fmt.Println(string(encoded))
	// Output: UGxhaW4gVGV4dA
}

func ExampleEncodeHex() {
	encoded := EncodeHex([]byte("Go"))
	fmt.Println(string(encoded))
	// Output: 476F
}
