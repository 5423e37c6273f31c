package coordconv_test

import (
	"fmt"

	"github.com/swot-tools/coordconv"
)

func ExampleLLToXY() {
	x, y, _ := coordconv.LLToXY(166.676, -77.846)
	fmt.Printf("%.2f %.2f\n", x, y)
	// Output: 305433.40 -1289661.03
}

func ExampleLLToXYSlice() {
	x, y, _ := coordconv.LLToXYSlice([]float64{0, 90}, []float64{-90, -71})
	fmt.Printf("%.2f %.2f\n", x[0], y[0])
	fmt.Printf("%.2f %.2f\n", x[1], y[1])
	// Output:
	// 0.00 0.00
	// 2082760.11 0.00
}

func ExampleNewTransformerFromEPSG() {
	t, _ := coordconv.NewTransformerFromEPSG(4326, 3032)
	e, n, _ := t.Transform(120, -75)
	fmt.Println(t)
	fmt.Printf("%.2f %.2f\n", e, n)
	// Output:
	// EPSG:4326 -> EPSG:3032
	// 7255380.79 7053389.56
}
