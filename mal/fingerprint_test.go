package mal

import (
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test050FingerprintFollowsCanonicalText(t *testing.T) {

	cv.Convey(`Given two spellings of the same tree, their fingerprints should match`, t, func() {
		a, err := Fingerprint(mustRead("(1   2)"))
		panicOn(err)
		b, err := Fingerprint(mustRead("(1,2) ; trailing"))
		panicOn(err)
		cv.So(a, cv.ShouldEqual, b)

		c, err := Fingerprint(mustRead(`{"b" 2 :a 1}`))
		panicOn(err)
		d, err := Fingerprint(mustRead(`{:a 1 "b" 2}`))
		panicOn(err)
		cv.So(c, cv.ShouldEqual, d)
	})

	cv.Convey(`Given different trees, their fingerprints should differ`, t, func() {
		a, err := Fingerprint(mustRead("(1 2)"))
		panicOn(err)
		b, err := Fingerprint(mustRead("[1 2]"))
		panicOn(err)
		cv.So(a, cv.ShouldNotEqual, b)
	})

	cv.Convey(`Given the same bytes, Blake2bUint64 is stable`, t, func() {
		a, err := Blake2bUint64([]byte("hello"))
		panicOn(err)
		b, err := Blake2bUint64([]byte("hello"))
		panicOn(err)
		cv.So(a, cv.ShouldEqual, b)
	})
}
