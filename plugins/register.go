// Package plugins implements the default preset's concrete transformations
// on top of the plugin contract.
package plugins

import "github.com/arturoeanton/svgo/plugin"

// Register adds every plugin this package implements to reg.
func Register(reg *plugin.Registry) {
	reg.Register("removeDoctype", newRemoveDoctype)
	reg.Register("removeComments", newRemoveComments)
	reg.Register("removeMetadata", newRemoveMetadata)
	reg.Register("removeEditorsNSData", newRemoveEditorsNSData)
	reg.Register("removeEmptyAttrs", newRemoveEmptyAttrs)
	reg.Register("removeHiddenElems", newRemoveHiddenElems)
	reg.Register("removeEmptyText", newRemoveEmptyText)
	reg.Register("removeEmptyContainers", newRemoveEmptyContainers)
	reg.Register("convertColors", newConvertColors)
	reg.Register("removeUnknownsAndDefaults", newRemoveUnknownsAndDefaults)
	reg.Register("cleanupNumericValues", newCleanupNumericValues)
	reg.Register("collapseGroups", newCollapseGroups)
	reg.Register("mergePaths", newMergePaths)
	reg.Register("sortAttrs", newSortAttrs)
	reg.Register("cleanupIds", newCleanupIds)
}
