/*
Package nbt decodes tagged binary tree files with byte-exact spans and cuts
single sub-trees out of them without re-encoding anything else.

# Quick Start

Rank the items of a player's inventory by encoded size:

	report, err := nbt.Inspect("world/playerdata/<uuid>.dat", nbt.DefaultOptions())
	if err != nil {
	    log.Fatal(err)
	}
	for _, e := range report.Entries {
	    fmt.Printf("Slot %d: %d bytes\n", e.Index, e.Size)
	}

Delete the largest one:

	res, err := nbt.DeleteEntry(path, report.Entries[0].Index, nbt.DefaultOptions())

# Working with trees

Decode a decompressed buffer yourself and walk it with the navigator:

	root, err := nbt.Decode(raw, types.Limits{})
	inv, err := nbt.Lookup(root, "", "Inventory")
	entries, err := nbt.Rank(inv)
	patched, err := nbt.DeleteSpan(raw, entries[0].Start, entries[0].End)

# Limitations

DeleteSpan removes bytes and nothing else. The element count of the list the
removed element belonged to is left as it was, so the patched buffer claims
one more element than it holds. Decoding the patched buffer again will
misread whatever follows the list.

# Error Handling

All errors carry a *types.Error somewhere in their chain. Compare with the
sentinels:

	if errors.Is(err, types.ErrUnexpectedEnd) {
	    // truncated file
	}
*/
package nbt
