package llvmgen

import "github.com/llir/llvm/ir/types"

// Values are computed in 64 bits and returned in 32, the width of a C main.
var (
	Int32 = types.I32
	Int64 = types.I64
)
