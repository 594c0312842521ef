/*
Copyright © 2018 the crsgeom authors.
This file is part of crsgeom.

crsgeom is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

crsgeom is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with crsgeom.  If not, see <http://www.gnu.org/licenses/>.
*/

//go:build js

package randgeom

import (
	"encoding/binary"
	"syscall/js"
	"time"
)

// entropySeed draws a seed from the browser's crypto.getRandomValues,
// falling back to the wall clock when the global is unavailable.
func entropySeed() int64 {
	crypto := js.Global().Get("crypto")
	if crypto.IsUndefined() {
		return time.Now().UnixNano()
	}
	arr := js.Global().Get("Uint8Array").New(8)
	crypto.Call("getRandomValues", arr)
	var b [8]byte
	js.CopyBytesToGo(b[:], arr)
	return int64(binary.LittleEndian.Uint64(b[:]))
}
