// Package compare eliminates boilerplate comparison code by generating
// ordering, equality, and hashing behavior for a type from a declarative
// list of (accessor, direction) rules.
//
// # Overview
//
// A rule names a value to retrieve from an instance, either an exported
// field or a derived getter function, together with an ascending or
// descending direction. [New] validates a rule list eagerly and returns a
// [Comparator] whose Less, Equal, and Hash methods all derive from that
// one list. [NewEquality] is the restricted form: named fields only, no
// ordering.
//
// # Usage
//
//	type Person struct {
//	    Name   string
//	    Age    int
//	    Gender string
//	}
//
//	byNameAge, err := compare.New[Person]("Name", "asc", "Age", "desc")
//	if err != nil {
//	    ...
//	}
//
//	bobjr := Person{Name: "bob", Age: 30, Gender: "male"}
//	alice := Person{Name: "bob", Age: 30, Gender: "female"}
//	bobsr := Person{Name: "bob", Age: 60, Gender: "male"}
//
//	byNameAge.Equal(bobjr, alice)                // true: gender is not a rule
//	byNameAge.Hash(bobjr) == byNameAge.Hash(alice) // true: same rule values
//	byNameAge.Less(bobsr, bobjr)                 // true: equal names, age desc
//
// A derived accessor computes the compared value instead of reading a
// field:
//
//	byGenderLen, err := compare.New[Person](
//	    "Name", compare.Asc,
//	    func(p Person) any { return len(p.Gender) }, compare.Desc,
//	)
//
// # Ordering semantics
//
// Rules are evaluated in order. A descending rule swaps the retrieved
// values before the strict-less test. The first rule whose left value is
// strictly less makes Less true; any other outcome moves evaluation to
// the next rule. When every rule has been walked without a strict
// difference, Less is false and the relative order of the two instances
// is undefined. Less exposes only strict-less: "equal" and "greater" are
// indistinguishable from a single call, which is all a sort needs.
//
// # Identity semantics
//
// Equal and Hash look at the same rule values, so instances that compare
// equal always hash identically. Fields outside the rule list never
// affect identity: two Persons with equal names and ages are
// interchangeable in a hash-keyed structure even when their genders
// differ.
//
// Hash codes are memoized per instance by default. Give instances a
// cache cell by embedding [github.com/jojje/comparable/hashing.Cache]
// and comparing pointers:
//
//	type Person struct {
//	    hashing.Cache
//	    Name string
//	    Age  int
//	}
//
// The first Hash call stores the code on the instance and later calls
// return it unchanged, even after fields mutate. Holders that mutate
// rule-relevant fields while an instance participates in hash-based
// lookups get stale lookups; that is the documented cost of the cell, and
// [Comparator.Recomputing] selects the recompute-always trade instead.
//
// # Concurrency
//
// Generated behavior is pure computation over instance values, with one
// exception: populating a hash cache cell writes to the instance. The
// cell is unsynchronized on purpose; instances are assumed single-owner
// when first hashed.
package compare
