// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import "code.hybscloud.com/atomix"

// Serial identifies one adapter invocation. Serials are assigned
// monotonically at construction, so diagnostics from concurrently
// in-flight operations can be ordered and told apart.
type Serial = uint32

// counter backs nextSerial. Never reset.
var counter atomix.Uint32

// nextSerial allocates the serial for a new adapter instance.
func nextSerial() Serial {
	return counter.Add(1)
}
