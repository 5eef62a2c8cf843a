// Package census checks and measures the selection networks.
//
// It answers two questions for every network in package selection:
//
//  1. Is it right? Every permutation of every duplicate pattern of its arity
//     is fed in, and the answer must be the exact argument a stable sort
//     puts at the network's rank.
//  2. What does it cost? Comparisons are counted with package instrument:
//     worst case and mean over duplicate-free permutations exhaustively, and
//     mean over seeded random inputs when sampling is on.
//
// The range layer (MinElement, MaxElement, MinMaxElement, MinMaxSeq) is
// checked the same way for all slices up to a given length.
//
// ⚙️ Usage:
//
//	nets, _ := census.Lookup("Select2Of5", "Select3Of7")
//	res, err := census.Run(ctx, nets,
//		census.WithSamples(100000),
//		census.WithSeed(42),
//		census.WithWorkers(runtime.NumCPU()),
//	)
//	for _, r := range res.Reports {
//		fmt.Println(r.Network.Name, r.Worst, r.Mean, r.OK())
//	}
//
// Sizes: a pattern set of length n has 2^(n-1) patterns and, counting
// permutations, the ordered Bell number of n inputs: 3, 13, 75, 541, 4683,
// 47293 for n = 2..7.
package census
