package dtype

// KeyAlreadyExists - Custom error to inform that an insert was attempted with a key that is already stored
type KeyAlreadyExists struct {
	msg string
}

// Error - Used to notify that the key already exists
func (K KeyAlreadyExists) Error() string {
	if K.msg == "" {
		return "key already exists in the dictionary"
	}
	return K.msg
}

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (K KeyNotFound) Error() string {
	if K.msg == "" {
		return "key not found in the dictionary"
	}
	return K.msg
}

// TypeNotFound - Custom error to inform that a dictionary type name or number is not recognized
type TypeNotFound struct {
	msg string
}

// Error - Used to notify that the dictionary type is unknown
func (T TypeNotFound) Error() string {
	if T.msg == "" {
		return "dictionary type not found"
	}
	return T.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probe sequence was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
