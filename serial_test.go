// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"testing"

	"code.hybscloud.com/await"
)

func TestCallSerialMonotonic(t *testing.T) {
	c1 := await.NewCall[int]()
	c2 := await.NewCall[int]()
	c3 := await.NewCall[string]()

	if c1.Serial() >= c2.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", c1.Serial(), c2.Serial())
	}
	if c2.Serial() >= c3.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", c2.Serial(), c3.Serial())
	}
}

func TestJobAndAsyncSerials(t *testing.T) {
	j := await.NewJob[int, int](4)
	op := await.NewAsync(immediate(1))

	if j.Serial() == 0 {
		t.Fatal("job was not assigned a serial")
	}
	if op.Serial() <= j.Serial() {
		t.Fatalf("serials not increasing: %d <= %d", op.Serial(), j.Serial())
	}
}
