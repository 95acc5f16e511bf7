package qd256

import "fmt"

func ExampleMul() {
	// s * r = r^63 * s
	fmt.Println(Mul(S, R))
	// Output: 191
}

func ExampleEncrypt() {
	ciphertext := Encrypt([]byte("Go"))
	plaintext := Decrypt(ciphertext)
	fmt.Println(string(plaintext))
	// Output: Go
}
