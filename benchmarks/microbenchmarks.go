package benchmarks

import "github.com/sarchlab/mipsim/emu"

// ResultReg is the register each workload leaves its result in.
const ResultReg = 2

// GetMicrobenchmarks returns the standard set of workloads. Each one targets
// a specific group of operations and leaves a known value in ResultReg.
func GetMicrobenchmarks() []Benchmark {
	return []Benchmark{
		arithmeticSequential(),
		dependencyChain(),
		memorySequential(),
		functionCalls(),
		branchTaken(),
		mixedOperations(),
		jumpChain(),
		loopSimulation(),
	}
}

// GetCoreBenchmarks returns a minimal set of workloads for quick validation:
// a loop, memory traffic and branch-heavy code.
func GetCoreBenchmarks() []Benchmark {
	return []Benchmark{
		loopSimulation(),
		memorySequential(),
		branchTaken(),
	}
}

// 1. Arithmetic Sequential - independent immediate adds
func arithmeticSequential() Benchmark {
	var prog []uint32
	for i := 0; i < 20; i++ {
		reg := uint8(3 + i%5)
		prog = append(prog, EncodeADDI(reg, reg, 1))
	}
	prog = append(prog,
		EncodeADD(ResultReg, 3, 4),
		0,
	)

	return Benchmark{
		Name:           "arithmetic_sequential",
		Description:    "20 independent ADDI operations across 5 registers",
		Program:        BuildProgram(prog...),
		ExpectedResult: 8, // R3 = R4 = 4
	}
}

// 2. Dependency Chain - every add reads the previous result
func dependencyChain() Benchmark {
	return Benchmark{
		Name:           "dependency_chain",
		Description:    "20 dependent ADDIs (R2 = R2 + 1)",
		Program:        buildDependencyChain(20),
		ExpectedResult: 20,
	}
}

func buildDependencyChain(n int) []byte {
	prog := make([]uint32, 0, n+1)
	for i := 0; i < n; i++ {
		prog = append(prog, EncodeADDI(ResultReg, ResultReg, 1))
	}
	prog = append(prog, 0)
	return BuildProgram(prog...)
}

// 3. Memory Sequential - store a block, then load and sum it
func memorySequential() Benchmark {
	const base = 0x100

	var prog []uint32
	for i := int32(0); i < 8; i++ {
		prog = append(prog,
			EncodeADDI(3, 0, i+1),
			EncodeSW(3, 0, base+4*i),
		)
	}
	for i := int32(0); i < 8; i++ {
		prog = append(prog,
			EncodeLW(4, 0, base+4*i),
			EncodeADD(ResultReg, ResultReg, 4),
		)
	}
	prog = append(prog, 0)

	return Benchmark{
		Name:           "memory_sequential",
		Description:    "8 stores then 8 loads to consecutive words",
		Program:        BuildProgram(prog...),
		ExpectedResult: 36,
	}
}

// 4. Function Calls - five calls to a subroutine that increments R2.
// The caller passes the return point in R5 as a JR target field.
func functionCalls() Benchmark {
	const calls = 5
	sub := uint32(4 * (2*calls + 1))

	var prog []uint32
	for i := 0; i < calls; i++ {
		jalAddr := uint32(4 * (2*i + 1))
		prog = append(prog,
			EncodeADDI(5, 0, int32(jalAddr>>2)),
			EncodeJAL(JumpTo(sub)),
		)
	}
	prog = append(prog,
		0,                                   // halt
		EncodeADDI(ResultReg, ResultReg, 1), // sub
		EncodeJR(5),
	)

	return Benchmark{
		Name:           "function_calls",
		Description:    "5 JAL/JR call and return pairs",
		Program:        BuildProgram(prog...),
		ExpectedResult: calls,
	}
}

// 5. Branch Taken - every branch skips a poisoned instruction
func branchTaken() Benchmark {
	var prog []uint32
	for i := 0; i < 5; i++ {
		pc := uint32(4 * len(prog))
		prog = append(prog,
			EncodeBEQ(0, 0, BranchTo(pc, pc+8)),
			EncodeADDI(ResultReg, 0, 99), // skipped
			EncodeADDI(ResultReg, ResultReg, 1),
		)
	}
	prog = append(prog, 0)

	return Benchmark{
		Name:           "branch_taken",
		Description:    "5 taken BEQs, each skipping one instruction",
		Program:        BuildProgram(prog...),
		ExpectedResult: 5,
	}
}

// 6. Mixed Operations - logic, shifts and compares
func mixedOperations() Benchmark {
	return Benchmark{
		Name:        "mixed_operations",
		Description: "ORI, ANDI, SLL, SUB, SLT, SLTI, OR and ADD",
		Program: BuildProgram(
			EncodeORI(3, 0, 0xF0F0),
			EncodeANDI(4, 3, 0x0FF0), // 0x00F0
			EncodeSLL(5, 4, 4),       // 0x0F00
			EncodeSUB(6, 5, 4),       // 0x0E10
			EncodeSLT(7, 4, 5),       // 1
			EncodeSLTI(8, 5, 0x100),  // 0
			EncodeOR(ResultReg, 6, 7),
			EncodeADD(ResultReg, ResultReg, 8),
			0,
		),
		ExpectedResult: 0x0E11,
	}
}

// 7. Jump Chain - direct and register jumps over dead code
func jumpChain() Benchmark {
	return Benchmark{
		Name:        "jump_chain",
		Description: "J and JALR skipping dead code",
		Setup: func(e *emu.Emulator) {
			e.WriteReg(6, JumpTo(0x18))
		},
		Program: BuildProgram(
			EncodeJMP(JumpTo(0x0C)),             // 0x00
			EncodeADDI(ResultReg, 0, 99),        // 0x04 skipped
			EncodeADDI(ResultReg, 0, 98),        // 0x08 skipped
			EncodeADDI(ResultReg, ResultReg, 3), // 0x0C
			EncodeJALR(31, 6),                   // 0x10
			EncodeADDI(ResultReg, 0, 97),        // 0x14 skipped
			EncodeADDI(ResultReg, ResultReg, 4), // 0x18
			0,
		),
		ExpectedResult: 7,
	}
}

// 8. Loop Simulation - sum 10 + 9 + ... + 1 with a counted loop
func loopSimulation() Benchmark {
	return Benchmark{
		Name:        "loop_simulation",
		Description: "Counted loop summing 1..10 with BNE",
		Program: BuildProgram(
			EncodeADDI(1, 0, 10),                  // 0x00
			EncodeADD(ResultReg, ResultReg, 1),    // 0x04 loop
			EncodeADDI(1, 1, -1),                  // 0x08
			EncodeBNE(1, 0, BranchTo(0x0C, 0x04)), // 0x0C
			0,
		),
		ExpectedResult: 55,
	}
}
