// Package conformer reads conformer coordinates from XYZ, PDB and MOL files.
//
// Only heavy atoms are kept unless WithHydrogens(true) is given. Readers are
// line based:
//
//	XYZ  lines with exactly four fields "elem x y z".
//	PDB  ATOM (and, by default, HETATM) records; x, y, z from columns 31–38,
//	     39–46 and 47–54; hydrogen when column 14 is 'H'.
//	MOL  atom block lines after the four-line header with more than ten
//	     fields "x y z elem ...".
package conformer
