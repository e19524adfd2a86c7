package encoder

import (
	"fmt"
	"os"
	"strings"

	"github.com/robin-pham/gedcom-2-json/decoder"
)

func ExampleEncode() {
	input := `0 HEAD
1 SEX M
`

	built, err := decoder.Decode(strings.NewReader(input))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if err := Encode(os.Stdout, built); err != nil {
		fmt.Printf("error: %v\n", err)
	}
	// Output:
	// [
	//   {
	//     "level": 0,
	//     "tag": "HEAD",
	//     "pointer": "",
	//     "data": "",
	//     "children": [
	//       {
	//         "level": 1,
	//         "tag": "SEX",
	//         "pointer": "",
	//         "data": "M",
	//         "children": []
	//       }
	//     ]
	//   }
	// ]
}
