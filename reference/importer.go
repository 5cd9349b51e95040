package reference

import (
	"aa-wizard-industry/universe"
	"context"
	"errors"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

var (
	errMissingField = errors.New("missing field")
	errUnknownType  = errors.New("unknown type")
)

// Result counts the rows of one file. Skipped rows had missing fields or referenced unknown types. Failed rows hit
// an unexpected error and were left out.
type Result struct {
	File     string
	Imported int
	Skipped  int
	Failed   int
}

// fields returns the named values of the row, or errMissingField when one is absent or null.
func fields(row gjson.Result, names ...string) ([]gjson.Result, error) {
	rs := make([]gjson.Result, 0, len(names))
	for _, n := range names {
		r := row.Get(n)
		if !r.Exists() || r.Type == gjson.Null {
			return nil, fmt.Errorf("%w: %s", errMissingField, n)
		}
		rs = append(rs, r)
	}
	return rs, nil
}

type rowHandler func(row gjson.Result) error

// importFile applies the handler to every row of the file. Row failures never abort the import: they are gathered
// and logged. Only a failed download is returned.
func importFile(l logrus.FieldLogger, ctx context.Context, src Source, file string, handle rowHandler) (Result, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reference.import")
	defer span.Finish()
	span.SetTag("file", file)

	rows, err := download(l, ctx, src, file)
	if err != nil {
		return Result{File: file}, err
	}
	return apply(l, file, rows, handle), nil
}

func download(l logrus.FieldLogger, ctx context.Context, src Source, file string) ([]gjson.Result, error) {
	rows, err := src.rows(ctx, file)
	if err != nil {
		l.WithField("file", file).WithError(err).Errorf("Unable to download [%s].", file)
	}
	return rows, err
}

func apply(l logrus.FieldLogger, file string, rows []gjson.Result, handle rowHandler) Result {
	fl := l.WithField("file", file)
	r := Result{File: file}
	var failures *multierror.Error
	for i, row := range rows {
		err := handle(row)
		switch {
		case err == nil:
			r.Imported++
		case errors.Is(err, errMissingField) || errors.Is(err, errUnknownType):
			r.Skipped++
		default:
			r.Failed++
			failures = multierror.Append(failures, fmt.Errorf("row %d: %w", i, err))
		}
	}
	if failures != nil {
		fl.WithError(failures.ErrorOrNil()).Warnf("[%d] rows of [%s] failed.", r.Failed, file)
	}
	fl.Infof("Imported [%d] rows of [%s], skipped [%d], failed [%d].", r.Imported, file, r.Skipped, r.Failed)
	return r
}

func knownTypes(db *gorm.DB) (func(id uint32) error, error) {
	ids, err := universe.GetTypeIds(db)
	if err != nil {
		return nil, err
	}
	return func(id uint32) error {
		if !ids[id] {
			return fmt.Errorf("%w: %d", errUnknownType, id)
		}
		return nil
	}, nil
}

func ImportBasePrices(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	known, err := knownTypes(db)
	if err != nil {
		return Result{}, err
	}
	return importFile(l, ctx, src, FileTypes, basePriceRow(db, known))
}

func basePriceRow(db *gorm.DB, known func(id uint32) error) rowHandler {
	return func(row gjson.Result) error {
		fs, err := fields(row, "typeID", "basePrice")
		if err != nil {
			return err
		}
		typeId := uint32(fs[0].Uint())
		if err = known(typeId); err != nil {
			return err
		}
		return universe.SaveBasePrice(db)(universe.NewBasePrice(typeId, fs[1].Float()))
	}
}

// ImportMetaTypes requires typeID and metaGroupID. A missing parentTypeID is stored as zero.
func ImportMetaTypes(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	known, err := knownTypes(db)
	if err != nil {
		return Result{}, err
	}
	return importFile(l, ctx, src, FileMetaTypes, func(row gjson.Result) error {
		fs, err := fields(row, "typeID", "metaGroupID")
		if err != nil {
			return err
		}
		typeId := uint32(fs[0].Uint())
		if err = known(typeId); err != nil {
			return err
		}
		return universe.SaveMetaType(db)(universe.NewMetaType(typeId, uint32(row.Get("parentTypeID").Uint()), uint32(fs[1].Uint())))
	})
}

func ImportTypes(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	return importFile(l, ctx, src, FileTypes, typeRow(db))
}

func typeRow(db *gorm.DB) rowHandler {
	return func(row gjson.Result) error {
		fs, err := fields(row, "typeID", "typeName", "groupID")
		if err != nil {
			return err
		}
		return universe.SaveType(db)(universe.NewType(uint32(fs[0].Uint()), fs[1].String(), uint32(fs[2].Uint()), uint32(row.Get("marketGroupID").Uint()), row.Get("published").Bool()))
	}
}

// importTypesAndPrices loads types and their base prices from a single download of the types file.
func importTypesAndPrices(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) ([]Result, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reference.import")
	defer span.Finish()
	span.SetTag("file", FileTypes)

	rows, err := download(l, ctx, src, FileTypes)
	if err != nil {
		return nil, err
	}
	types := apply(l, FileTypes, rows, typeRow(db))
	known, err := knownTypes(db)
	if err != nil {
		return []Result{types}, err
	}
	return []Result{types, apply(l, FileTypes, rows, basePriceRow(db, known))}, nil
}

func ImportGroups(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	return importFile(l, ctx, src, FileGroups, func(row gjson.Result) error {
		fs, err := fields(row, "groupID", "groupName", "categoryID")
		if err != nil {
			return err
		}
		return universe.SaveGroup(db)(universe.NewGroup(uint32(fs[0].Uint()), fs[1].String(), uint32(fs[2].Uint())))
	})
}

func ImportCategories(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	return importFile(l, ctx, src, FileCategories, func(row gjson.Result) error {
		fs, err := fields(row, "categoryID", "categoryName")
		if err != nil {
			return err
		}
		return universe.SaveCategory(db)(universe.NewCategory(uint32(fs[0].Uint()), fs[1].String()))
	})
}

func ImportMarketGroups(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	return importFile(l, ctx, src, FileMarketGroups, func(row gjson.Result) error {
		fs, err := fields(row, "marketGroupID", "marketGroupName")
		if err != nil {
			return err
		}
		return universe.SaveMarketGroup(db)(universe.NewMarketGroup(uint32(fs[0].Uint()), uint32(row.Get("parentGroupID").Uint()), fs[1].String(), row.Get("description").String()))
	})
}

func ImportSolarSystems(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	return importFile(l, ctx, src, FileSolarSystems, func(row gjson.Result) error {
		fs, err := fields(row, "solarSystemID", "solarSystemName", "constellationID", "security")
		if err != nil {
			return err
		}
		return universe.SaveSystem(db)(universe.NewSystem(uint32(fs[0].Uint()), fs[1].String(), uint32(fs[2].Uint()), fs[3].Float()))
	})
}

func ImportActivityProducts(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error) {
	known, err := knownTypes(db)
	if err != nil {
		return Result{}, err
	}
	return importFile(l, ctx, src, FileActivityProducts, func(row gjson.Result) error {
		fs, err := fields(row, "typeID", "activityID", "productTypeID", "quantity")
		if err != nil {
			return err
		}
		typeId, productTypeId := uint32(fs[0].Uint()), uint32(fs[2].Uint())
		if err = known(typeId); err != nil {
			return err
		}
		if err = known(productTypeId); err != nil {
			return err
		}
		return universe.SaveActivityProduct(db)(universe.NewActivityProduct(typeId, uint32(fs[1].Uint()), productTypeId, uint32(fs[3].Uint())))
	})
}

type importer func(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) ([]Result, error)

func single(f func(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) (Result, error)) importer {
	return func(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) ([]Result, error) {
		r, err := f(l, ctx, db, src)
		if err != nil {
			return nil, err
		}
		return []Result{r}, nil
	}
}

// ImportAll refreshes every reference table, referenced tables first. A file that cannot be downloaded does not stop
// the others. The types file is downloaded once for both types and base prices.
func ImportAll(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, src Source) ([]Result, error) {
	var errs *multierror.Error
	results := make([]Result, 0, 8)
	for _, i := range []importer{
		single(ImportCategories),
		single(ImportGroups),
		single(ImportMarketGroups),
		importTypesAndPrices,
		single(ImportSolarSystems),
		single(ImportActivityProducts),
		single(ImportMetaTypes),
	} {
		if ctx.Err() != nil {
			errs = multierror.Append(errs, ctx.Err())
			break
		}
		rs, err := i(l, ctx, db, src)
		results = append(results, rs...)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return results, errs.ErrorOrNil()
}
