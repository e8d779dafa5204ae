package loaders

import m "math"

/** @brief An invalid 16-bit id used to mark unclaimed lookup slots. */
const InvalidIDUint16 uint16 = m.MaxUint16
