// File: grisu_powers.go
// Title: Cached Powers of Ten
// Description: Read-only table of precomputed power-of-ten scaling factors
//              for the shortest-conversion algorithm: normalized 64-bit
//              significand / binary exponent pairs for 10^-348 through
//              10^340 in steps of eight decimal orders.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-20
// Modified: 2026-05-20
//
// Change History:
// - 2026-05-20 v0.1.0: Initial table

package fmtx

var powersOfTen = [87]extFloat{
	{0xfa8fd5a0081c0288, -1220}, // 10^-348
	{0xbaaee17fa23ebf76, -1193}, // 10^-340
	{0x8b16fb203055ac76, -1166}, // 10^-332
	{0xcf42894a5dce35ea, -1140}, // 10^-324
	{0x9a6bb0aa55653b2d, -1113}, // 10^-316
	{0xe61acf033d1a45df, -1087}, // 10^-308
	{0xab70fe17c79ac6ca, -1060}, // 10^-300
	{0xff77b1fcbebcdc4f, -1034}, // 10^-292
	{0xbe5691ef416bd60c, -1007}, // 10^-284
	{0x8dd01fad907ffc3c, -980},  // 10^-276
	{0xd3515c2831559a83, -954},  // 10^-268
	{0x9d71ac8fada6c9b5, -927},  // 10^-260
	{0xea9c227723ee8bcb, -901},  // 10^-252
	{0xaecc49914078536d, -874},  // 10^-244
	{0x823c12795db6ce57, -847},  // 10^-236
	{0xc21094364dfb5637, -821},  // 10^-228
	{0x9096ea6f3848984f, -794},  // 10^-220
	{0xd77485cb25823ac7, -768},  // 10^-212
	{0xa086cfcd97bf97f4, -741},  // 10^-204
	{0xef340a98172aace5, -715},  // 10^-196
	{0xb23867fb2a35b28e, -688},  // 10^-188
	{0x84c8d4dfd2c63f3b, -661},  // 10^-180
	{0xc5dd44271ad3cdba, -635},  // 10^-172
	{0x936b9fcebb25c996, -608},  // 10^-164
	{0xdbac6c247d62a584, -582},  // 10^-156
	{0xa3ab66580d5fdaf6, -555},  // 10^-148
	{0xf3e2f893dec3f126, -529},  // 10^-140
	{0xb5b5ada8aaff80b8, -502},  // 10^-132
	{0x87625f056c7c4a8b, -475},  // 10^-124
	{0xc9bcff6034c13053, -449},  // 10^-116
	{0x964e858c91ba2655, -422},  // 10^-108
	{0xdff9772470297ebd, -396},  // 10^-100
	{0xa6dfbd9fb8e5b88f, -369},  // 10^-92
	{0xf8a95fcf88747d94, -343},  // 10^-84
	{0xb94470938fa89bcf, -316},  // 10^-76
	{0x8a08f0f8bf0f156b, -289},  // 10^-68
	{0xcdb02555653131b6, -263},  // 10^-60
	{0x993fe2c6d07b7fac, -236},  // 10^-52
	{0xe45c10c42a2b3b06, -210},  // 10^-44
	{0xaa242499697392d3, -183},  // 10^-36
	{0xfd87b5f28300ca0e, -157},  // 10^-28
	{0xbce5086492111aeb, -130},  // 10^-20
	{0x8cbccc096f5088cc, -103},  // 10^-12
	{0xd1b71758e219652c, -77},   // 10^-4
	{0x9c40000000000000, -50},   // 10^4
	{0xe8d4a51000000000, -24},   // 10^12
	{0xad78ebc5ac620000, 3},     // 10^20
	{0x813f3978f8940984, 30},    // 10^28
	{0xc097ce7bc90715b3, 56},    // 10^36
	{0x8f7e32ce7bea5c70, 83},    // 10^44
	{0xd5d238a4abe98068, 109},   // 10^52
	{0x9f4f2726179a2245, 136},   // 10^60
	{0xed63a231d4c4fb27, 162},   // 10^68
	{0xb0de65388cc8ada8, 189},   // 10^76
	{0x83c7088e1aab65db, 216},   // 10^84
	{0xc45d1df942711d9a, 242},   // 10^92
	{0x924d692ca61be758, 269},   // 10^100
	{0xda01ee641a708dea, 295},   // 10^108
	{0xa26da3999aef774a, 322},   // 10^116
	{0xf209787bb47d6b85, 348},   // 10^124
	{0xb454e4a179dd1877, 375},   // 10^132
	{0x865b86925b9bc5c2, 402},   // 10^140
	{0xc83553c5c8965d3d, 428},   // 10^148
	{0x952ab45cfa97a0b3, 455},   // 10^156
	{0xde469fbd99a05fe3, 481},   // 10^164
	{0xa59bc234db398c25, 508},   // 10^172
	{0xf6c69a72a3989f5c, 534},   // 10^180
	{0xb7dcbf5354e9bece, 561},   // 10^188
	{0x88fcf317f22241e2, 588},   // 10^196
	{0xcc20ce9bd35c78a5, 614},   // 10^204
	{0x98165af37b2153df, 641},   // 10^212
	{0xe2a0b5dc971f303a, 667},   // 10^220
	{0xa8d9d1535ce3b396, 694},   // 10^228
	{0xfb9b7cd9a4a7443c, 720},   // 10^236
	{0xbb764c4ca7a44410, 747},   // 10^244
	{0x8bab8eefb6409c1a, 774},   // 10^252
	{0xd01fef10a657842c, 800},   // 10^260
	{0x9b10a4e5e9913129, 827},   // 10^268
	{0xe7109bfba19c0c9d, 853},   // 10^276
	{0xac2820d9623bf429, 880},   // 10^284
	{0x80444b5e7aa7cf85, 907},   // 10^292
	{0xbf21e44003acdd2d, 933},   // 10^300
	{0x8e679c2f5e44ff8f, 960},   // 10^308
	{0xd433179d9c8cb841, 986},   // 10^316
	{0x9e19db92b4e31ba9, 1013},  // 10^324
	{0xeb96bf6ebadf77d9, 1039},  // 10^332
	{0xaf87023b9bf0ee6b, 1066},  // 10^340
}
