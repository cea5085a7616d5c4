package llvmgen

import (
	"encoding/json"
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
)

const infoGlobal = "__exprc_info"

// Info describes how a module was produced. It is stored in the module as a
// NUL-terminated JSON string.
type Info struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

func registerInfoWithModule(i Info, m *ir.Module) {
	data, err := json.Marshal(i)
	if err != nil {
		panic(err)
	}

	g := m.NewGlobalDef(infoGlobal, constant.NewCharArray(append(data, 0)))
	g.Immutable = true
}

// ReadInfo recovers the Info a module was generated with.
func ReadInfo(m *ir.Module) (i Info, err error) {
	for _, g := range m.Globals {
		if g.Name() != infoGlobal {
			continue
		}
		arr, ok := g.Init.(*constant.CharArray)
		if !ok || len(arr.X) == 0 {
			return Info{}, fmt.Errorf("%s is not a string", infoGlobal)
		}
		err = json.Unmarshal(arr.X[:len(arr.X)-1], &i)
		return
	}
	return Info{}, fmt.Errorf("module has no %s", infoGlobal)
}
