package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/writer"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Entry is a ranked list element plus the identifying fields the producer
// stores in item records, when present.
type Entry struct {
	types.ItemEntry
	Slot *int8  `json:"slot,omitempty"` // the record's "Slot" byte
	ID   string `json:"id,omitempty"`   // the record's "id" string
}

// Report describes the target list of a file.
type Report struct {
	Target   string  `json:"target"`
	Format   string  `json:"format"`
	ListSize int     `json:"list_size"` // bytes occupied by the list payload
	Entries  []Entry `json:"entries"`   // largest first
}

// Find returns the entry for list index idx.
func (r *Report) Find(idx int) (Entry, error) {
	for _, e := range r.Entries {
		if e.Index == idx {
			return e, nil
		}
	}
	return Entry{}, types.Errorf(types.ErrKindMissingField, "entry", types.NoOffset,
		"no element with index %d in %s", idx, r.Target)
}

// Report ranks the list at path and annotates each entry.
func (d *Document) Report(path []string) (*Report, error) {
	list, err := d.Lookup(path)
	if err != nil {
		return nil, err
	}
	ranked, err := Rank(list)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FormatPath(path), err)
	}
	items, _ := AsList(list)

	r := &Report{
		Target:   FormatPath(path),
		Format:   d.Format.String(),
		ListSize: list.Size(),
		Entries:  make([]Entry, len(ranked)),
	}
	for i, it := range ranked {
		r.Entries[i] = describe(it, items[it.Index])
	}
	return r, nil
}

// describe reads Slot and id from an item compound. Elements of any other
// shape are reported by index only.
func describe(it types.ItemEntry, n *types.Node) Entry {
	e := Entry{ItemEntry: it}
	fields, err := AsCompound(n)
	if err != nil {
		return e
	}
	if slot, err := Field(fields, "Slot"); err == nil {
		if b, ok := slot.Value.(types.Byte); ok {
			v := int8(b)
			e.Slot = &v
		}
	}
	if id, err := Field(fields, "id"); err == nil {
		if s, ok := id.Value.(types.String); ok {
			e.ID = string(s)
		}
	}
	return e
}

// Inspect loads the file at path and reports on its target list.
//
// Example:
//
//	report, err := nbt.Inspect("player.dat", nbt.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Total inventory size is %d bytes\n", report.ListSize)
func Inspect(path string, opts Options) (*Report, error) {
	doc, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	return doc.Report(opts.Target)
}

// DeleteResult describes a completed deletion.
type DeleteResult struct {
	Entry          Entry  `json:"entry"`
	ListSizeBefore int    `json:"list_size_before"`
	ListSizeAfter  int    `json:"list_size_after"`
	Patch          *Patch `json:"-"`
	BackupPath     string `json:"backup_path,omitempty"`
	BackupDigest   string `json:"backup_digest,omitempty"`
	BytesWritten   int    `json:"bytes_written"`
}

// DeleteEntry removes element idx of the target list from the file at path
// and writes the file back in its container format.
//
// The operation cuts the element's bytes and nothing else: the list's stored
// element count is not decremented. See the package documentation.
//
// Example:
//
//	res, err := nbt.DeleteEntry("player.dat", 3, nbt.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Removed %d bytes\n", res.Entry.Size)
func DeleteEntry(path string, idx int, opts Options) (*DeleteResult, error) {
	doc, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	report, err := doc.Report(opts.Target)
	if err != nil {
		return nil, err
	}
	return DeleteFromReport(path, doc, report, idx, opts)
}

// DeleteFromReport removes element idx using a document and report the
// caller already holds, e.g. after showing the report and prompting. path is
// the file doc was loaded from.
func DeleteFromReport(path string, doc *Document, report *Report, idx int, opts Options) (*DeleteResult, error) {
	entry, err := report.Find(idx)
	if err != nil {
		return nil, err
	}
	payload, patch, err := doc.Without(entry.Start, entry.End)
	if err != nil {
		return nil, err
	}
	encoded, err := doc.Encode(payload, opts.Format, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", path, err)
	}

	res := &DeleteResult{
		Entry:          entry,
		ListSizeBefore: report.ListSize,
		ListSizeAfter:  report.ListSize - entry.Size,
		Patch:          patch,
		BytesWritten:   len(encoded),
	}

	if opts.CreateBackup {
		backupPath, digest, err := writer.Backup(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create backup: %w", err)
		}
		res.BackupPath = backupPath
		res.BackupDigest = digest.String()
	}

	sink := opts.Sink
	if sink == nil {
		sink = &writer.FileWriter{Path: path}
	}
	if err := sink.WriteData(encoded); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return res, nil
}
