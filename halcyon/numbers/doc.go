// Package numbers parses numeric values from the textual form of arbitrary inputs
// without returning errors.
//
// Every To* helper returns false when the input is nil, when its textual form is not
// a number for the target type, or when the number does not fit the target width:
//
//	port, ok := numbers.ToInt32(os.Getenv("PORT"))
//	if !ok {
//	    port = 8080
//	}
//
// Integers are read in base 10 with an optional sign. Floats accept decimal,
// scientific and hexadecimal notation; NaN and infinities are not numbers here.
package numbers
