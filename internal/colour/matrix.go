package colour

// Conversion matrices from https://drafts.csswg.org/css-color-4/#color-conversion-code
// and https://bottosson.github.io/posts/oklab/.

type mat3 [3][3]float64

func (m mat3) mul(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

var (
	linearSRGBToXYZ = mat3{
		{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
		{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
		{0.01933081871559182, 0.11919477979462598, 0.9505321522496606},
	}

	xyzToLinearSRGB = mat3{
		{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
		{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
		{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
	}

	xyzToLMS = mat3{
		{0.8190224379967030, 0.3619062600528904, -0.1288737815209879},
		{0.0329836539323885, 0.9292868615863434, 0.0361446663506424},
		{0.0481771893596242, 0.2642395317527308, 0.6335478284694309},
	}

	lmsToXYZ = mat3{
		{1.2268798733741557, -0.5578149965554813, 0.28139105017721583},
		{-0.04057576262431372, 1.1122868293970594, -0.07171106666151701},
		{-0.07637294974672142, -0.4214933239627914, 1.5869240244272418},
	}

	lmsToOKLab = mat3{
		{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
		{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
		{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
	}

	okLabToLMS = mat3{
		{0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339},
		{1.0000000088817607767, -0.1055613423236563494, -0.063854174771705903402},
		{1.0000000546724109177, -0.089484182094965759684, -1.2914855378640917399},
	}

	// linearSRGBToLMS skips XYZ entirely. It must agree with
	// xyzToLMS * linearSRGBToXYZ.
	linearSRGBToLMS = mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
)
