package smt

// keyBit returns bit i of the key, where bit i is bit i%8 of byte key[i/8].
// The low bit of key[0] is bit 0.
func keyBit(key []byte, i int) bool {
	return key[i/8]&(1<<uint(i%8)) != 0
}
