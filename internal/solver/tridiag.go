package solver

// solveTridiag solves A·x = rhs for a tridiagonal A with constant sub-
// and super-diagonal off and the given main diagonal, using the Thomas
// algorithm. The result is written into x; cp and dp are caller-owned
// scratch of the same length. All slices must have equal length.
//
// The Crank–Nicolson matrix I + i·dt/(2ħ)·H is strictly diagonally
// dominant for the Hamiltonians built here, so no pivoting is needed.
func solveTridiag(diag []complex128, off complex128, rhs, x, cp, dp []complex128) {
	n := len(diag)
	if n == 0 {
		return
	}

	cp[0] = off / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - off*cp[i-1]
		cp[i] = off / denom
		dp[i] = (rhs[i] - off*dp[i-1]) / denom
	}

	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
}
